//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	bakeryhttp "bakerydir/internal/bakery/delivery/http"
	bakerydomain "bakerydir/internal/bakery/domain"
	bakeryrepo "bakerydir/internal/bakery/repository"
	bakeryquery "bakerydir/internal/bakery/usecase/query"
	favoritehttp "bakerydir/internal/favorite/delivery/http"
	favoritedomain "bakerydir/internal/favorite/domain"
	favoriterepo "bakerydir/internal/favorite/repository"
	favoritecommand "bakerydir/internal/favorite/usecase/command"
	favoritequery "bakerydir/internal/favorite/usecase/query"
	ratinghttp "bakerydir/internal/rating/delivery/http"
	ratingdomain "bakerydir/internal/rating/domain"
	ratingrepo "bakerydir/internal/rating/repository"
	ratingcommand "bakerydir/internal/rating/usecase/command"
	ratingquery "bakerydir/internal/rating/usecase/query"
	userhttp "bakerydir/internal/user/delivery/http"
	userdomain "bakerydir/internal/user/domain"
	userrepo "bakerydir/internal/user/repository"
	usercommand "bakerydir/internal/user/usecase/command"
	userquery "bakerydir/internal/user/usecase/query"
	"bakerydir/kafka"
	"bakerydir/pkg/auth"
)

// Handlers bundles every HTTP handler of the service
type Handlers struct {
	Auth     *userhttp.AuthHandler
	Bakery   *bakeryhttp.BakeryHandler
	Favorite *favoritehttp.FavoriteHandler
	Rating   *ratinghttp.RatingHandler
}

// ProvideUserRepository provides the user repository with tracing
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewTracingUserRepository(db)
}

// ProvideCachedBakeryRepository provides the bakery repository with Redis caching
func ProvideCachedBakeryRepository(db *gorm.DB, client *redis.Client) *bakeryrepo.CachedBakeryRepository {
	return bakeryrepo.NewCachedBakeryRepository(bakeryrepo.NewGormBakeryRepository(db), client)
}

// ProvideFavoriteRepository provides the favorite repository
func ProvideFavoriteRepository(db *gorm.DB) favoritedomain.FavoriteRepository {
	return favoriterepo.NewGormFavoriteRepository(db)
}

// ProvideRatingRepository provides the rating repository with tracing
func ProvideRatingRepository(db *gorm.DB) ratingdomain.RatingRepository {
	return ratingrepo.NewTracingRatingRepository(db)
}

// RepositorySet bundles every repository provider
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideCachedBakeryRepository,
	ProvideFavoriteRepository,
	ProvideRatingRepository,
	wire.Bind(new(bakerydomain.BakeryRepository), new(*bakeryrepo.CachedBakeryRepository)),
	wire.Bind(new(ratingcommand.BakeryCacheInvalidator), new(*bakeryrepo.CachedBakeryRepository)),
)

// UsecaseSet bundles every command and query handler provider
var UsecaseSet = wire.NewSet(
	usercommand.NewRegisterUserHandler,
	usercommand.NewLoginUserHandler,
	userquery.NewGetProfileHandler,
	bakeryquery.NewListBakeriesHandler,
	favoritecommand.NewAddFavoriteHandler,
	favoritecommand.NewRemoveFavoriteHandler,
	favoritequery.NewListFavoritesHandler,
	ratingcommand.NewSubmitRatingHandler,
	ratingquery.NewGetMyRatingHandler,
)

// HandlerSet bundles every HTTP handler provider
var HandlerSet = wire.NewSet(
	userhttp.NewAuthHandler,
	bakeryhttp.NewBakeryHandler,
	favoritehttp.NewFavoriteHandler,
	ratinghttp.NewRatingHandler,
	wire.Struct(new(Handlers), "*"),
)

// InitializeHandlers wires the full handler graph
func InitializeHandlers(db *gorm.DB, client *redis.Client, tokens *auth.TokenManager, publisher *kafka.Publisher) (*Handlers, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		HandlerSet,
	)
	return nil, nil
}
