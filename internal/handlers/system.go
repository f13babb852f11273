package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
)

// MigrationsDir holds the SQL schema files, relative to the working directory.
var MigrationsDir = "migrations"

// InstallDatabase checks for database schema and installs it if missing
// @Summary Install Database Schema
// @Description Executes the PostgreSQL migration for the skin catalog
// @Tags System
// @Security AdminToken
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string "ADMIN_TOKEN not configured"
// @Failure 500 {object} map[string]string
// @Router /system/install [post]
func (h *Handler) InstallDatabase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results := make(map[string]string)
	hasError := false

	pgSchemaPath := filepath.Join(MigrationsDir, "postgres", "001_nft_skins.sql")
	if err := h.executePostgresSQL(ctx, pgSchemaPath); err != nil {
		results["postgres"] = "failed: " + err.Error()
		hasError = true
	} else {
		results["postgres"] = "success"
	}

	statusCode := http.StatusOK
	if hasError {
		statusCode = http.StatusInternalServerError
	}

	h.jsonResponse(w, statusCode, map[string]interface{}{
		"status":  "completed",
		"results": results,
		"error":   hasError,
	})
}

// executePostgresSQL reads a SQL file and executes it on Postgres
func (h *Handler) executePostgresSQL(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		h.logger.Errorw("failed to read schema file", "db", "PostgreSQL", "path", path, "error", err)
		return err
	}

	_, err = h.pg.Exec(ctx, string(content))
	if err != nil {
		h.logger.Errorw("failed to execute schema", "db", "PostgreSQL", "error", err)
		return err
	}

	h.logger.Infow("successfully installed schema", "db", "PostgreSQL")
	return nil
}
