package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jaminalder/elite-tic-tac-toe/internal/app"
)

type handlers struct {
	sessions *app.Sessions
	tpl      *templates
	cookie   string
	log      *zap.Logger
}

// session returns the caller's session, starting a new one when the cookie is
// missing or points at an evicted session.
func (h *handlers) session(w http.ResponseWriter, r *http.Request) app.Session {
	if c, err := r.Cookie(h.cookie); err == nil && c.Value != "" {
		if sess, ok := h.sessions.Get(c.Value); ok {
			return sess
		}
	}
	return h.newSession(w)
}

func (h *handlers) newSession(w http.ResponseWriter) app.Session {
	sess := h.sessions.Create()
	// No Expires/Max-Age: the browser forgets the game when its session ends.
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// update runs a transition against the caller's session. A session evicted
// between lookup and update is replaced by a fresh one.
func (h *handlers) update(w http.ResponseWriter, r *http.Request, fn func(id string) (app.Session, error)) app.Session {
	sess := h.session(w, r)
	next, err := fn(sess.ID)
	if errors.Is(err, app.ErrSessionNotFound) {
		return h.newSession(w)
	}
	return next
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	h.write(w, h.tpl.page, newGameView(sess.State))
}

func (h *handlers) activate(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	var sess app.Session
	if err != nil {
		// malformed index: echo the current state back
		sess = h.session(w, r)
	} else {
		sess = h.update(w, r, func(id string) (app.Session, error) {
			return h.sessions.Activate(id, index)
		})
	}
	h.respond(w, r, sess)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	sess := h.update(w, r, h.sessions.Reset)
	h.respond(w, r, sess)
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// respond sends the game fragment to htmx and redirects plain form posts.
func (h *handlers) respond(w http.ResponseWriter, r *http.Request, sess app.Session) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.write(w, h.tpl.game, newGameView(sess.State))
}

func (h *handlers) write(w http.ResponseWriter, t *template.Template, data gameView) {
	body, err := renderTemplate(t, data)
	if err != nil {
		h.log.Error("render template", zap.Error(err))
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
