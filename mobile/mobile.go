// Package mobile exposes the local server to gomobile bindings.
package mobile

import (
	"net/http"

	"fortchess/internal/dice"
	"fortchess/internal/server/game"
	httpserver "fortchess/internal/server/http"

	log "github.com/sirupsen/logrus"
)

func newHandler() http.Handler {
	return httpserver.NewServer(game.NewManager(dice.Clock()))
}

// StartServer serves the JSON API on 127.0.0.1:port in the background so it
// does not block the UI thread.
func StartServer(port string) {
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, newHandler()); err != nil {
			log.WithError(err).WithField("port", port).Error("server stopped")
		}
	}()
}
