package app

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/trunov/rawhub/internal/archive"
	"github.com/trunov/rawhub/internal/config"
	"github.com/trunov/rawhub/internal/converter"
	"github.com/trunov/rawhub/internal/decode"
	"github.com/trunov/rawhub/internal/fetch"
	"github.com/trunov/rawhub/internal/transport/handler"
	"github.com/trunov/rawhub/internal/transport/router"
	"github.com/trunov/rawhub/internal/upload"
)

type App struct {
	HttpServer *http.Server
	archiver   *archive.Storage
}

func New(cfg *config.Config) (*App, error) {
	downloader := fetch.NewDownloader(cfg.Download.Timeout, cfg.Download.MaxFileMB<<20)

	decoder, err := decode.NewDcraw()
	if err != nil {
		return nil, err
	}

	uploader := upload.NewUploader(cfg.Upload.Timeout)

	var archiver converter.Archiver
	var st *archive.Storage
	if cfg.Archive.Enabled {
		st, err = archive.NewStorage(&cfg.Archive)
		if err != nil {
			return nil, err
		}
		archiver = st
	}

	conv := converter.New(downloader, decoder, uploader, archiver, cfg.Decoder.WorkDir)

	h := handler.New(conv, cfg)
	r := router.NewRouter(h)

	s := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		HttpServer: s,
		archiver:   st,
	}, nil
}

func (a *App) Run() error {
	log.Info().Str("addr", a.HttpServer.Addr).Msg("starting server")
	err := a.HttpServer.ListenAndServe()
	if a.archiver != nil {
		a.archiver.Close()
	}
	return err
}
