package domain

import "encoding/json"

// Capability names one class of gated mutation
type Capability string

const (
	CapManageAdministrators Capability = "manage-administrators"
	CapDeleteMember         Capability = "delete-member"
	CapEditTransaction      Capability = "edit-transaction"
	CapDeleteTransaction    Capability = "delete-transaction"
	CapEditOrganizationInfo Capability = "edit-organization-info"
)

// AllCapabilities lists every capability the gate knows about
var AllCapabilities = []Capability{
	CapManageAdministrators,
	CapDeleteMember,
	CapEditTransaction,
	CapDeleteTransaction,
	CapEditOrganizationInfo,
}

// legacyKeys maps the key names older dashboard builds send
var legacyKeys = map[string]Capability{
	"allowManageAdmins":      CapManageAdministrators,
	"allowDeleteMember":      CapDeleteMember,
	"allowEditTransaction":   CapEditTransaction,
	"allowDeleteTransaction": CapDeleteTransaction,
	"allowEditChurchInfo":    CapEditOrganizationInfo,
}

// Capabilities is the permission map of an administrator.
// The zero value grants nothing.
type Capabilities struct {
	ManageAdministrators bool
	DeleteMember         bool
	EditTransaction      bool
	DeleteTransaction    bool
	EditOrganizationInfo bool
}

// Has reports whether c is granted. Unknown names are never granted.
func (p Capabilities) Has(c Capability) bool {
	switch c {
	case CapManageAdministrators:
		return p.ManageAdministrators
	case CapDeleteMember:
		return p.DeleteMember
	case CapEditTransaction:
		return p.EditTransaction
	case CapDeleteTransaction:
		return p.DeleteTransaction
	case CapEditOrganizationInfo:
		return p.EditOrganizationInfo
	}
	return false
}

// With returns a copy with c set to granted. Unknown names are ignored.
func (p Capabilities) With(c Capability, granted bool) Capabilities {
	switch c {
	case CapManageAdministrators:
		p.ManageAdministrators = granted
	case CapDeleteMember:
		p.DeleteMember = granted
	case CapEditTransaction:
		p.EditTransaction = granted
	case CapDeleteTransaction:
		p.DeleteTransaction = granted
	case CapEditOrganizationInfo:
		p.EditOrganizationInfo = granted
	}
	return p
}

// IsEmpty reports whether nothing is granted
func (p Capabilities) IsEmpty() bool {
	return p == Capabilities{}
}

// Map returns the granted capabilities keyed by name
func (p Capabilities) Map() map[string]bool {
	m := make(map[string]bool)
	for _, c := range AllCapabilities {
		if p.Has(c) {
			m[string(c)] = true
		}
	}
	return m
}

// MarshalJSON encodes granted capabilities only, keyed by capability name
func (p Capabilities) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

// UnmarshalJSON accepts an object of name → bool. Legacy key names are
// understood, unknown keys are dropped and anything but a literal true
// counts as not granted.
func (p *Capabilities) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var caps Capabilities
	for key, value := range raw {
		c := Capability(key)
		if legacy, ok := legacyKeys[key]; ok {
			c = legacy
		}
		// duplicates across spellings: any true wins
		if string(value) == "true" {
			caps = caps.With(c, true)
		}
	}

	*p = caps
	return nil
}

// ParseCapabilities decodes a permission map sent as a JSON string, the way
// multipart forms carry it. An empty string yields no capabilities.
func ParseCapabilities(s string) (Capabilities, error) {
	var caps Capabilities
	if s == "" {
		return caps, nil
	}
	if err := json.Unmarshal([]byte(s), &caps); err != nil {
		return Capabilities{}, err
	}
	return caps, nil
}
