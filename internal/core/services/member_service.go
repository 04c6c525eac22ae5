package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"iadev-dashboard/internal/adapters/persistence/models"
	"iadev-dashboard/internal/adapters/persistence/repositories"
	"iadev-dashboard/internal/adapters/storage"
	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/pkg/metrics"
	"iadev-dashboard/internal/pkg/password"

	"gorm.io/gorm"
)

// HistoryLimit caps the member history lookup
const HistoryLimit = 20

// MemberService manages the credential store and enforces the
// administrator mutation guards
type MemberService struct {
	memberRepo repositories.MemberRepository
	txRepo     repositories.TransactionRepository
	media      uploader
}

// NewMemberService creates a new member service
func NewMemberService(
	memberRepo repositories.MemberRepository,
	txRepo repositories.TransactionRepository,
	media MediaStore,
	uploadTimeout time.Duration,
) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		txRepo:     txRepo,
		media:      uploader{store: media, timeout: uploadTimeout},
	}
}

// MemberInput represents a create or update request. Nil fields were not
// submitted.
type MemberInput struct {
	Name            *string
	Document        *string
	Phone           *string
	Address         *string
	BirthDate       *string
	IsAdministrator *bool
	Username        *string
	Password        *string
	Permissions     *domain.Capabilities
	Photo           *Upload
}

// MemberResult is a saved member plus a warning when the photo was dropped
type MemberResult struct {
	Member  *models.Member
	Warning string
}

// AuthorizeAdministratorChange applies the administrator guard. Promoting,
// demoting a current administrator, or touching an administrator's
// credentials or permission map without stating the role needs
// manage-administrators unless the caller is the super-administrator.
func AuthorizeAdministratorChange(caller *domain.Session, input *MemberInput, target *models.Member) error {
	isAdmin := target != nil && target.IsAdministrator
	promotes := input.IsAdministrator != nil && *input.IsAdministrator
	demotes := isAdmin && input.IsAdministrator != nil && !*input.IsAdministrator
	altersAdmin := input.IsAdministrator == nil && isAdmin &&
		(input.Username != nil || input.Password != nil || input.Permissions != nil)

	if !promotes && !demotes && !altersAdmin {
		return nil
	}
	if caller.Can(domain.CapManageAdministrators) {
		return nil
	}
	metrics.AuthorizationDenials.WithLabelValues(string(domain.CapManageAdministrators)).Inc()
	return domain.ErrPermissionDenied
}

// List lists members by name without credentials
func (s *MemberService) List(ctx context.Context) ([]*models.MemberSummary, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	out := make([]*models.MemberSummary, len(members))
	for i, m := range members {
		out[i] = m.ToSummary()
	}
	return out, nil
}

// Get gets a member by ID
func (s *MemberService) Get(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return member, nil
}

// Create creates a member. The guard runs before any upload or write.
func (s *MemberService) Create(ctx context.Context, caller *domain.Session, input *MemberInput) (*MemberResult, error) {
	if err := AuthorizeAdministratorChange(caller, input, nil); err != nil {
		return nil, err
	}

	name := trimmed(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domain.ErrMemberNameMissing)
	}

	member := &models.Member{
		Name:      name,
		Document:  deref(input.Document),
		Phone:     deref(input.Phone),
		Address:   deref(input.Address),
		BirthDate: deref(input.BirthDate),
	}

	if input.IsAdministrator != nil && *input.IsAdministrator {
		member.IsAdministrator = true
		if err := applyCredentials(member, input); err != nil {
			return nil, err
		}
		if member.Username == nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domain.ErrUsernameRequired)
		}
	} else {
		member.Demote()
	}

	url, warning := s.media.put(ctx, storage.FolderProfiles, input.Photo)
	member.PhotoURL = url

	if err := s.memberRepo.Create(ctx, member); err != nil {
		s.media.remove(ctx, storage.FolderProfiles, url)
		return nil, translateMemberWriteError(err)
	}

	log.Printf("✅ Member created: #%d (admin: %t)", member.ID, member.IsAdministrator)
	return &MemberResult{Member: member, Warning: warning}, nil
}

// Update updates a member. Demotion always scrubs credentials; a password is
// rehashed only when a new one is submitted; a submitted permission map
// replaces the stored one entirely.
func (s *MemberService) Update(ctx context.Context, caller *domain.Session, id uint, input *MemberInput) (*MemberResult, error) {
	// promotion can be rejected before touching the store
	if err := AuthorizeAdministratorChange(caller, input, nil); err != nil {
		return nil, err
	}

	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeAdministratorChange(caller, input, member); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domain.ErrMemberNameMissing)
		}
		member.Name = name
	}
	if input.Document != nil {
		member.Document = *input.Document
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Address != nil {
		member.Address = *input.Address
	}
	if input.BirthDate != nil {
		member.BirthDate = *input.BirthDate
	}
	if input.IsAdministrator != nil {
		member.IsAdministrator = *input.IsAdministrator
	}

	if member.IsAdministrator {
		if err := applyCredentials(member, input); err != nil {
			return nil, err
		}
		if member.Username == nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domain.ErrUsernameRequired)
		}
	} else {
		member.Demote()
	}

	previousPhoto := member.PhotoURL
	url, warning := s.media.put(ctx, storage.FolderProfiles, input.Photo)
	if url != "" {
		member.PhotoURL = url
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		s.media.remove(ctx, storage.FolderProfiles, url)
		return nil, translateMemberWriteError(err)
	}

	if url != "" {
		s.media.remove(ctx, storage.FolderProfiles, previousPhoto)
	}

	log.Printf("✅ Member updated: #%d (admin: %t)", member.ID, member.IsAdministrator)
	return &MemberResult{Member: member, Warning: warning}, nil
}

// Delete deletes a member and its stored photo
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	member, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemberNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	s.media.remove(ctx, storage.FolderProfiles, member.PhotoURL)

	log.Printf("✅ Member deleted: #%d", id)
	return nil
}

// History returns the latest transactions whose description matches name
// as a case-insensitive regular expression
func (s *MemberService) History(ctx context.Context, name string) ([]*models.Transaction, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if _, err := regexp.Compile(name); err != nil {
		return nil, fmt.Errorf("%w: invalid search pattern", domain.ErrInvalidInput)
	}

	txs, err := s.txRepo.SearchDescription(ctx, name, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return txs, nil
}

// applyCredentials copies submitted administrator fields onto member
func applyCredentials(member *models.Member, input *MemberInput) error {
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			member.Username = nil
		} else {
			member.Username = &username
		}
	}

	if pass := trimmed(input.Password); pass != "" {
		hash, err := password.Hash(pass)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		member.PasswordHash = &hash
	}

	if input.Permissions != nil {
		member.Permissions = *input.Permissions
	}
	return nil
}

func translateMemberWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, domain.ErrMemberNameTaken)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
