package articledb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	assert.NoError(t, db.CreateTable(ctx, "articles", "file"))

	err := db.CreateTable(ctx, "articles", "file")
	assert.Error(t, err, "creating the same table twice must fail")
	assert.True(t, IsStorageError(err))
}

func TestAddColumnMissingTable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	err := db.AddColumn(ctx, "articles", "text")
	assert.Error(t, err)
	assert.True(t, IsStorageError(err))
}

func Test_validateIdent(t *testing.T) {
	tests := []struct {
		name    string
		ident   string
		wantErr bool
	}{
		{name: "simple", ident: "articles", wantErr: false},
		{name: "underscore prefix", ident: "_tmp", wantErr: false},
		{name: "mixed case with digits", ident: "Articles2024", wantErr: false},
		{name: "empty", ident: "", wantErr: true},
		{name: "leading digit", ident: "1articles", wantErr: true},
		{name: "whitespace", ident: "bad name", wantErr: true},
		{name: "quote injection", ident: `a"; DROP TABLE b; --`, wantErr: true},
		{name: "dash", ident: "a-b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateIdent(tt.ident)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
