package setup

import (
	"github.com/ashchan-dev/ashchan/internal/config"
	"github.com/ashchan-dev/ashchan/internal/handler"
	"github.com/ashchan-dev/ashchan/internal/jwt"
	"github.com/ashchan-dev/ashchan/internal/search"
	"github.com/ashchan-dev/ashchan/internal/service"
	"github.com/ashchan-dev/ashchan/internal/storage/pg"
)

// Dependencies holds everything the server needs, built once at
// startup.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Index   *search.Index
	Auth    service.AuthService
	Handler *handler.Handler
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	index, err := search.Open(cfg.Public.IndexDir)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.Public.TokenTTL)

	auth := service.NewAuth(storage, jwtService, storage)
	board := service.NewBoard(storage, storage, index, storage)
	thread := service.NewThread(storage, storage, index, storage)
	post := service.NewThreadPost(storage, storage, index)
	searchSvc := service.NewSearch(index)
	logs := service.NewLog(storage)

	h := handler.New(auth, board, thread, post, searchSvc, logs, storage)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Index:   index,
		Auth:    auth,
		Handler: h,
	}, nil
}

// Cleanup releases the database pool and the index writer.
func (d *Dependencies) Cleanup() {
	d.Storage.Cleanup()
	d.Index.Close()
}
