package models

import (
	"time"

	"iadev-dashboard/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Credential Store
// ============================================================

// Member represents members table. Administrators additionally carry
// login credentials and a capability map; non-administrators never do.
type Member struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	Name            string              `gorm:"column:nome;uniqueIndex;size:150;not null" json:"nome"`
	Document        string              `gorm:"column:cpf;size:20" json:"cpf"`
	Phone           string              `gorm:"column:telefone;size:30" json:"telefone"`
	Address         string              `gorm:"column:endereco;size:255" json:"endereco"`
	BirthDate       string              `gorm:"column:data_nascimento;size:20" json:"dataNascimento"`
	PhotoURL        string              `gorm:"column:foto_perfil_url;size:1000" json:"fotoPerfilUrl"`
	IsAdministrator bool                `gorm:"column:is_administrador;not null;index" json:"isAdministrador"`
	Username        *string             `gorm:"column:usuario;size:100;index" json:"usuario"`
	PasswordHash    *string             `gorm:"column:senha;size:255" json:"-"`
	Permissions     domain.Capabilities `gorm:"column:permissoes;type:json;serializer:json" json:"permissoes"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// Demote clears every credential field and the administrator flag
func (m *Member) Demote() {
	m.IsAdministrator = false
	m.Username = nil
	m.PasswordHash = nil
	m.Permissions = domain.Capabilities{}
}

// MemberSummary DTO used by the member list
type MemberSummary struct {
	ID              uint   `json:"id"`
	Name            string `json:"nome"`
	PhotoURL        string `json:"fotoPerfilUrl"`
	Phone           string `json:"telefone"`
	IsAdministrator bool   `json:"isAdministrador"`
}

func (m *Member) ToSummary() *MemberSummary {
	return &MemberSummary{
		ID:              m.ID,
		Name:            m.Name,
		PhotoURL:        m.PhotoURL,
		Phone:           m.Phone,
		IsAdministrator: m.IsAdministrator,
	}
}

// MemberBackup is the full export form of a member, password hash included
type MemberBackup struct {
	Member
	PasswordHash *string `json:"senha"`
}

func (m *Member) ToBackup() *MemberBackup {
	return &MemberBackup{Member: *m, PasswordHash: m.PasswordHash}
}

// ============================================================
// Ledger
// ============================================================

// Transaction represents transactions table
type Transaction struct {
	ID          uint                   `gorm:"primaryKey" json:"id"`
	Description string                 `gorm:"column:descricao;size:500;index" json:"descricao"`
	Amount      float64                `gorm:"column:valor;type:decimal(15,2);not null" json:"valor"`
	Kind        domain.TransactionKind `gorm:"column:tipo;size:20;not null" json:"tipo"`
	Date        time.Time              `gorm:"column:data;not null;index" json:"data"`
	ReceiptURL  string                 `gorm:"column:comprovante_url;size:1000" json:"comprovanteUrl,omitempty"`
	CreatedAt   time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// ============================================================
// Organization profile (singleton)
// ============================================================

// Organization represents organizations table
type Organization struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LegalName    string    `gorm:"column:razao_social;size:200" json:"razaoSocial"`
	TradeName    string    `gorm:"column:nome_fantasia;size:200" json:"nomeFantasia"`
	TaxID        string    `gorm:"column:cnpj;size:20" json:"cnpj"`
	Email        string    `gorm:"column:email;size:150" json:"email"`
	Phone        string    `gorm:"column:telefone;size:30" json:"telefone"`
	Address      string    `gorm:"column:endereco;size:255" json:"endereco"`
	City         string    `gorm:"column:cidade;size:100" json:"cidade"`
	State        string    `gorm:"column:estado;size:50" json:"estado"`
	PostalCode   string    `gorm:"column:cep;size:15" json:"cep"`
	FoundingDate string    `gorm:"column:data_fundacao;size:20" json:"dataFundacao"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

// AutoMigrate creates or updates every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&Transaction{},
		&Organization{},
	)
}
