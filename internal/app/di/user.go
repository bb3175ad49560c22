package di

import (
	"gorm.io/gorm"

	useradapters "course_backend/internal/feature/user/adapters"
	userhandler "course_backend/internal/feature/user/transport/handler"
	userusecase "course_backend/internal/feature/user/usecase"
	"course_backend/internal/platform/imageproc"
	jwtmw "course_backend/internal/platform/jwt"
)

// imageQuality is the JPEG quality of resized avatars and covers.
const imageQuality = 85

// NewUserHandler wires registration, sessions and profile media.
func NewUserHandler(db *gorm.DB, uploader userusecase.Uploader, auth jwtmw.Config) *userhandler.UserHandler {
	users := useradapters.NewUserGorm(db)
	resizer := imageproc.NewResizer(imageQuality)
	access := jwtmw.NewGenerator(auth.Secret, auth.AccessTTL)
	refresh := jwtmw.NewRefreshGenerator(auth.Secret, auth.RefreshTTL)

	return userhandler.NewUserHandler(userhandler.Usecases{
		Register:  userusecase.NewRegisterUsecase(users),
		Auth:      userusecase.NewAuthenticateUsecase(users, access, refresh),
		Profile:   userusecase.NewGetProfileUsecase(users),
		Biography: userusecase.NewUpdateBiographyUsecase(users),
		Avatar:    userusecase.NewUpdateAvatarUsecase(users, uploader, resizer),
		Cover:     userusecase.NewUpdateCoverUsecase(users, uploader, resizer),
	}, refresh.Expiration())
}
