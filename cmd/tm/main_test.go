package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/cli"
	"task-manager/internal/config"
)

func TestBuildApp(t *testing.T) {
	tests := []struct {
		name    string
		backend string
	}{
		{"memory store", config.BackendMemory},
		{"sqlite store", config.BackendSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Store.Backend = tt.backend
			cfg.Display.Emoji = config.EmojiNever

			var out bytes.Buffer
			app, err := buildApp(context.Background(), cfg, &out)
			require.NoError(t, err)
			defer app.Close()

			in := strings.NewReader("1\nBuy milk\n\n2\n0\n")
			require.NoError(t, cli.NewMenu(app, in, &out).Run(context.Background()))

			assert.Contains(t, out.String(), "[OK] Task added: Buy milk")
			assert.Contains(t, out.String(), "[1] Buy milk - No description")
		})
	}
}

func TestBuildApp_InvalidBackend(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Store.Backend = "postgres"

	app, err := buildApp(context.Background(), cfg, &bytes.Buffer{})
	assert.Nil(t, app)
	assert.Error(t, err)
}
