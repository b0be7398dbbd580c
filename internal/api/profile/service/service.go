package profileService

import (
	"ProjectWafeer/internal/api/profile"
	"ProjectWafeer/internal/entity"
	"ProjectWafeer/internal/session"
	"ProjectWafeer/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IProfileService interface {
	GetProfile(ctx context.Context) (entity.UserProfile, error)
	ReplaceProfile(ctx context.Context, req profile.ReplaceProfileRequest) (entity.UserProfile, error)
	AddObligation(ctx context.Context, req profile.AddObligationRequest) (entity.UserProfile, error)
	RemoveObligation(ctx context.Context, id string) (entity.UserProfile, error)
}

type profileService struct {
	log   *logrus.Logger
	store *session.Store
	utils utils.IUtils
}

func NewProfileService(log *logrus.Logger, store *session.Store, utils utils.IUtils) IProfileService {
	return &profileService{
		log:   log,
		store: store,
		utils: utils,
	}
}
