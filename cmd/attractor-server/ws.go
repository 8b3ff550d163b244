package main

import (
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// handleFrameStream plays a trajectory back over a websocket: the full
// trajectory is computed up front, then frames are written as JSON one per
// tick so a thin client can animate without doing any math. The stream ends
// with a normal closure after the last frame, or earlier if the client goes
// away.
//
// Extra query param on top of parseRequest: fps (default 10, clamped to
// 1..60).
func (s *server) handleFrameStream(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	fps, err := intParam(r.URL.Query(), "fps", 10)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	fps = min(max(fps, 1), 60)

	traj, err := req.evolve()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for k, frame := range traj {
		if err := wsjson.Write(ctx, c, toFrameJSON(k, frame)); err != nil {
			log.Printf("frame stream: %v", err)
			return
		}
		if k == len(traj)-1 {
			break
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
	_ = c.Close(websocket.StatusNormalClosure, "end of trajectory")
}
