package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaiwen/acadhub/internal/app/models"
	appRepos "github.com/kaiwen/acadhub/internal/app/repositories"
)

var defaultCertificateTypes = []appModels.CertificateType{
	{TypeName: "语言类", Description: "英语四六级、普通话等语言水平证书"},
	{TypeName: "计算机类", Description: "计算机等级考试等计算机能力证书"},
	{TypeName: "专业认证", Description: "软件设计师、网络工程师等职业资格证书"},
	{TypeName: "其他", Description: "未归入以上类别的证书"},
}

// CreateDefaultData seeds the built-in certificate types and a default
// teacher account if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	typeRepo := appRepos.NewCertificateTypeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (certificate types, teacher account)...")
	var finalErr error

	existing, err := typeRepo.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing certificate types for seeding")
		finalErr = errors.Join(finalErr, err)
	} else {
		present := make(map[string]bool, len(existing))
		for _, t := range existing {
			present[t.TypeName] = true
		}

		for _, t := range defaultCertificateTypes {
			if present[t.TypeName] {
				continue
			}
			seeded := t
			if err := typeRepo.Create(ctx, &seeded); err != nil {
				lgr.Error().Err(err).Str("typeName", t.TypeName).Msg("Error creating default certificate type")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// Default teacher account for first login
	var teacherExists bool
	err = dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE teacher_id = $1)`, "T001").Scan(&teacherExists)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default teacher exists")
		finalErr = errors.Join(finalErr, err)
	} else if !teacherExists {
		lgr.Info().Msg("Creating default teacher account...")
		_, err = dbPool.Exec(ctx, `
			INSERT INTO teachers (teacher_id, name, email, password)
			VALUES ($1, $2, $3, $4)`,
			"T001", "王老师", "wang@school.edu.cn", "123456")
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating default teacher")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
