package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	. "github.com/cricklet/chessrules/internal/bitboards"
	. "github.com/cricklet/chessrules/internal/fen"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/render"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

//go:embed static
var assets embed.FS

type LogForwarding struct {
	writeCallback func(message string)
}

func (l *LogForwarding) Println(v ...any) {
	l.writeCallback(fmt.Sprintln(v...))
}
func (l *LogForwarding) Printf(format string, v ...any) {
	l.writeCallback(fmt.Sprintf(format, v...))
}
func (l *LogForwarding) Print(v ...any) {
	l.writeCallback(fmt.Sprint(v...))
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func ws(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer c.Close()

	// Log lines go to stdout only. Updates are the sole websocket payload.
	logger := &LogForwarding{
		writeCallback: func(message string) {
			log.Print("server: ", message)
		},
	}

	s, setupErr := newSession(logger)
	if !IsNil(setupErr) {
		logger.Println("session:", setupErr)
		return
	}

	var send = func(update UpdateToWeb) bool {
		logger.Println("sending", update)
		bytes, err := json.Marshal(update)
		if err != nil {
			logger.Println("update: json marshal:", err)
			return false
		}
		if err := c.WriteMessage(websocket.TextMessage, bytes); err != nil {
			logger.Println("websocket:", err)
			return false
		}
		return true
	}

	if !send(s.finalize(UpdateToWeb{})) {
		return
	}

	for {
		_, bytes, err := c.ReadMessage()
		if err != nil {
			logger.Printf("read: %v\n", err)
			break
		}

		var message MessageFromWeb
		if err := json.Unmarshal(bytes, &message); err != nil {
			logger.Println("handleMessageFromWeb: json unmarshal:", err)
			if !send(s.finalize(UpdateToWeb{Error: err.Error()})) {
				break
			}
			continue
		}
		if !send(s.handle(message)) {
			break
		}
	}
}

// boardSvg renders ?fen= (the standard position by default) with the
// squares in ?highlight=e2,e4 marked.
func boardSvg(w http.ResponseWriter, r *http.Request) {
	fenString := r.URL.Query().Get("fen")
	if fenString == "" {
		fenString = StartFen
	}
	position, _, err := PositionFromFen(fenString)
	if !IsNil(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	highlight := AllZeros
	if squares := r.URL.Query().Get("highlight"); squares != "" {
		for _, square := range strings.Split(squares, ",") {
			b, err := BitboardFromString(square)
			if !IsNil(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			highlight |= b
		}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	render.SVG(w, &position, highlight)
}

func index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, assets, "static/index.html")
}

func newRouter() http.Handler {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	router := mux.NewRouter()
	router.HandleFunc("/ws", ws)
	router.HandleFunc("/board.svg", boardSvg).Methods(http.MethodGet)
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	router.HandleFunc("/", index)
	return handlers.LoggingHandler(os.Stdout, router)
}
