package configs

import (
	"context"
	"strings"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/sirupsen/logrus"
)

const adminRole = "Administrador"

// SeedAdmin creates the first administrator account when ADMIN_USER and
// ADMIN_PASSWORD are set and the username is still free.
func SeedAdmin(ctx context.Context, cfg *Config, users *repository.UserRepository, log logrus.FieldLogger) error {
	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		log.Info("skip seeding admin: missing ADMIN_USER/ADMIN_PASSWORD")
		return nil
	}

	taken, err := users.ExistsUsername(ctx, cfg.AdminUser)
	if err != nil {
		return err
	}
	if taken {
		log.WithField("user", cfg.AdminUser).Info("admin already exists")
		return nil
	}

	roles, err := users.Roles(ctx)
	if err != nil {
		return err
	}
	var roleID int64
	for _, r := range roles {
		if strings.EqualFold(r.Name, adminRole) {
			roleID = r.ID
			break
		}
	}
	if roleID == 0 {
		log.Warn("skip seeding admin: role " + adminRole + " not found")
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	return users.Create(ctx, &entity.User{
		Username:     cfg.AdminUser,
		PasswordHash: hash,
		Name:         "Admin",
		LastName:     "Seed",
		RoleID:       roleID,
		Email:        cfg.AdminEmail,
	})
}
