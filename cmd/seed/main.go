// Command seed は既定のカテゴリを登録し、任意でユーザーのインストラクター状態を設定します。
//
//	go run ./cmd/seed
//	go run ./cmd/seed -email owner@example.com -status active
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	courseadapters "course_backend/internal/feature/course/adapters"
	"course_backend/internal/feature/course/domain/entity"
	useradapters "course_backend/internal/feature/user/adapters"
	platformdb "course_backend/internal/platform/db"
	"course_backend/internal/platform/logger"
	"course_backend/internal/shared/slug"
)

var defaultCategories = []string{
	"Programming",
	"Design",
	"Data Science",
	"Marketing",
	"Business",
	"Photography",
	"Música",
}

func main() {
	email := flag.String("email", "", "user whose instructor status is set")
	status := flag.String("status", string(entity.InstructorStatusActive), "instructor status: pending, active, suspended or banned")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	zl, err := logger.New(logger.ConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Install(zl)()

	if err := run(context.Background(), *email, entity.InstructorStatus(*status)); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, email string, status entity.InstructorStatus) error {
	db, err := platformdb.Open(platformdb.LoadConfigFromEnv())
	if err != nil {
		return err
	}
	defer platformdb.Close(db)

	if err := platformdb.Migrate(ctx, db); err != nil {
		return err
	}

	categories := courseadapters.NewCategoryGorm(db)
	for _, name := range defaultCategories {
		s, err := slug.CreateFromText(name)
		if err != nil {
			return err
		}
		c, err := categories.Upsert(ctx, name, s.Value())
		if err != nil {
			return err
		}
		slog.Info("category seeded", "id", c.ID, "slug", c.Slug)
	}

	if email == "" {
		return nil
	}
	user, err := useradapters.NewUserGorm(db).FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	instructor, err := courseadapters.NewInstructorGorm(db).SetStatus(ctx, user.ID, status)
	if err != nil {
		return err
	}
	slog.Info("instructor status set", "user_id", instructor.UserID, "status", instructor.Status)
	return nil
}
