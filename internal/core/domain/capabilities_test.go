package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCapabilitiesMarshalWritesGrantedOnly(t *testing.T) {
	caps := Capabilities{DeleteMember: true, EditOrganizationInfo: true}

	data, err := json.Marshal(caps)
	require.NoError(t, err)
	assert.JSONEq(t, `{"delete-member":true,"edit-organization-info":true}`, string(data))

	data, err = json.Marshal(Capabilities{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestCapabilitiesUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Capabilities
	}{
		{"canonical keys", `{"edit-transaction":true,"delete-transaction":true}`, Capabilities{EditTransaction: true, DeleteTransaction: true}},
		{"legacy keys", `{"allowManageAdmins":true,"allowEditChurchInfo":true}`, Capabilities{ManageAdministrators: true, EditOrganizationInfo: true}},
		{"false is not granted", `{"delete-member":false}`, Capabilities{}},
		{"truthy string is not granted", `{"delete-member":"true","edit-transaction":1}`, Capabilities{}},
		{"unknown keys dropped", `{"launch-rockets":true,"delete-member":true}`, Capabilities{DeleteMember: true}},
		{"any spelling true wins", `{"allowDeleteMember":true,"delete-member":false}`, Capabilities{DeleteMember: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Capabilities
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCapabilities(t *testing.T) {
	caps, err := ParseCapabilities("")
	require.NoError(t, err)
	assert.True(t, caps.IsEmpty())

	caps, err = ParseCapabilities(`{"delete-member":true}`)
	require.NoError(t, err)
	assert.True(t, caps.Has(CapDeleteMember))
	assert.False(t, caps.Has(CapEditTransaction))

	_, err = ParseCapabilities(`{not json`)
	assert.Error(t, err)
}

func TestHasUnknownCapability(t *testing.T) {
	caps := Capabilities{ManageAdministrators: true, DeleteMember: true, EditTransaction: true, DeleteTransaction: true, EditOrganizationInfo: true}
	assert.False(t, caps.Has(Capability("allow-everything")))
}

func TestCapabilitiesRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var caps Capabilities
		for _, c := range AllCapabilities {
			caps = caps.With(c, rapid.Bool().Draw(t, string(c)))
		}

		data, err := json.Marshal(caps)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back Capabilities
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if back != caps {
			t.Fatalf("round trip changed %+v into %+v", caps, back)
		}
	})
}

func TestSessionCan(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Can(CapDeleteMember))

	master := &Session{CallerID: "root", IsMaster: true}
	for _, c := range AllCapabilities {
		assert.True(t, master.Can(c), c)
	}

	admin := &Session{CallerID: "7", Permissions: Capabilities{DeleteTransaction: true}}
	assert.True(t, admin.Can(CapDeleteTransaction))
	assert.False(t, admin.Can(CapEditTransaction))
}
