package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Conta de luz.pdf", "Conta_de_luz"},
		{"Recibo Março Ação.jpg", "Recibo_Marco_Acao"},
		{"sem-extensao", "sem-extensao"},
		{".pdf", ".pdf"},
		{"   .png", "arquivo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestPublicIDFromURL(t *testing.T) {
	url := "https://res.cloudinary.com/demo/image/upload/v1700000000/comprovantes/Conta_de_luz_1700000000000.pdf"
	assert.Equal(t, "comprovantes/Conta_de_luz_1700000000000", PublicIDFromURL(FolderReceipts, url))
	assert.Equal(t, "", PublicIDFromURL(FolderReceipts, ""))
}

func TestPublicIDFromURLKeepsInnerDots(t *testing.T) {
	publicID := SanitizeName("nota.fiscal.pdf") + "_1700"
	require.Equal(t, "nota.fiscal_1700", publicID)

	url := "https://res.cloudinary.com/demo/image/upload/v1700000000/comprovantes/" + publicID + ".pdf"
	assert.Equal(t, "comprovantes/nota.fiscal_1700", PublicIDFromURL(FolderReceipts, url))
}

func TestDisabledStores(t *testing.T) {
	_, err := DisabledMediaStore{}.Upload(context.Background(), FolderProfiles, "a.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, DisabledMediaStore{}.Delete(context.Background(), FolderProfiles, "https://x/y.jpg"))

	_, _, err = DisabledUploader{}.Upload(context.Background(), "backup.json", []byte("{}"))
	assert.ErrorIs(t, err, ErrDisabled)
}
