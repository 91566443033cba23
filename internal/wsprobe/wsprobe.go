// Package wsprobe connects to the URL of a websocket trigger and reports the
// first message its filters would accept.
package wsprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// ErrNoMatch is returned when the connection closed or the deadline passed
// before any message matched.
var ErrNoMatch = errors.New("no message matched the trigger filters")

// Options tunes Probe. Zero values use a 30s timeout and the default dialer.
type Options struct {
	Dialer      *websocket.Dialer
	Timeout     time.Duration
	MaxMessages int
	Logger      *slog.Logger
}

// Result describes what the probe saw.
type Result struct {
	// Matched is the first message accepted by every filter.
	Matched json.RawMessage
	// Seen counts messages read, including Matched.
	Seen int
	// Unsupported lists initial messages that need a server-side runnable
	// and were not sent.
	Unsupported []string
}

// Probe dials trigger.URL, sends its raw initial messages and reads until a
// message matches every filter.
func Probe(ctx context.Context, trigger models.WebsocketTrigger, opts Options) (Result, error) {
	var res Result
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	dialer := opts.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	conn, _, err := dialer.DialContext(ctx, trigger.URL, nil)
	if err != nil {
		return res, fmt.Errorf("dialing %s: %w", trigger.URL, err)
	}
	defer conn.Close()
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for _, m := range trigger.InitialMessages {
		switch {
		case m.RawMessage != nil:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(*m.RawMessage)); err != nil {
				return res, fmt.Errorf("sending initial message: %w", err)
			}
		case m.RunnableResult != nil:
			res.Unsupported = append(res.Unsupported, m.RunnableResult.Path)
			log.Warn("skipping runnable_result initial message", "path", m.RunnableResult.Path)
		}
	}

	for opts.MaxMessages <= 0 || res.Seen < opts.MaxMessages {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return res, ErrNoMatch
			}
			return res, fmt.Errorf("reading message: %w", err)
		}
		res.Seen++
		if Match(data, trigger.Filters) {
			res.Matched = json.RawMessage(data)
			return res, nil
		}
		log.Debug("message rejected by filters", "n", res.Seen)
	}
	return res, ErrNoMatch
}

// Match reports whether the JSON object msg satisfies every filter. A filter
// matches when msg has its key at the top level and the value there is a
// superset of the filter value. Non-object messages never match unless
// there are no filters.
func Match(msg []byte, filters []models.WebsocketFilter) bool {
	if len(filters) == 0 {
		return true
	}
	var obj map[string]any
	if err := json.Unmarshal(msg, &obj); err != nil {
		return false
	}
	for _, f := range filters {
		v, ok := obj[f.Key]
		if !ok || !isSuperset(v, normalize(f.Value)) {
			return false
		}
	}
	return true
}

// isSuperset: objects match on a recursive key subset, arrays when every
// wanted element matches some element, everything else on equality.
func isSuperset(have, want any) bool {
	switch w := want.(type) {
	case map[string]any:
		h, ok := have.(map[string]any)
		if !ok {
			return false
		}
		for k, wv := range w {
			hv, ok := h[k]
			if !ok || !isSuperset(hv, wv) {
				return false
			}
		}
		return true
	case []any:
		h, ok := have.([]any)
		if !ok {
			return false
		}
		for _, wv := range w {
			found := false
			for _, hv := range h {
				if isSuperset(hv, wv) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(have, want)
}

// normalize round-trips v through JSON so Go literals compare like decoded
// messages.
func normalize(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
