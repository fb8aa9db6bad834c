package auth

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myhttp"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/services/ironapi"
)

// webService exchanges credentials for a remote-API session token and keeps
// that token in the session cookie. Protocol design is a server concern:
// this side only stores and replays the opaque token.
type webService struct {
	api     ironapi.AuthAPI
	devAuth bool
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(api ironapi.AuthAPI, devAuth bool) *webService {
	return &webService{
		api:     api,
		devAuth: devAuth,
		logger:  mylog.New("auth"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/login", s.loginForm()).Methods("GET")
	router.HandleFunc("/login", s.login()).Methods("POST")
	router.HandleFunc("/logout", s.logout()).Methods("POST")
	if s.devAuth {
		router.HandleFunc("/dev-auth", s.devAuthForm()).Methods("GET")
		router.HandleFunc("/dev-auth", s.devLogin()).Methods("POST")
	}
}

//go:embed templates
var templateFolder embed.FS
var (
	loginPageTemplate   *template.Template
	devAuthPageTemplate *template.Template
)

func init() {
	loginPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/login.html"))
	devAuthPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/devauth.html"))
}

type loginPage struct {
	Error string
	Next  string
}

func (s *webService) loginForm() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.WritePage(c, w, loginPageTemplate, loginPage{
			Next: r.URL.Query().Get("next"),
		})
	}
}

func (s *webService) login() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		email := r.FormValue("email")
		password := r.FormValue("password")

		session, err := s.api.Login(c, email, password)
		if err != nil {
			s.logger.Log(c, email, mylog.SeverityWarn, "Login failed: %s", err)
			responseWriter.WritePage(c, w, loginPageTemplate, loginPage{
				Error: "Invalid email or password",
				Next:  r.FormValue("next"),
			})
			return
		}

		s.startSession(w, session)
		http.Redirect(w, r, redirectTarget(r.FormValue("next")), http.StatusSeeOther)
	}
}

func (s *webService) devAuthForm() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.WritePage(c, w, devAuthPageTemplate, loginPage{
			Next: r.URL.Query().Get("next"),
		})
	}
}

func (s *webService) devLogin() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		email := r.FormValue("email")

		session, err := s.api.DevLogin(c, email)
		if err != nil {
			s.logger.Log(c, email, mylog.SeverityWarn, "Dev login failed: %s", err)
			responseWriter.WritePage(c, w, devAuthPageTemplate, loginPage{
				Error: "Dev login failed",
				Next:  r.FormValue("next"),
			})
			return
		}

		s.startSession(w, session)
		http.Redirect(w, r, redirectTarget(r.FormValue("next")), http.StatusSeeOther)
	}
}

func (s *webService) logout() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     mycontext.SessionCookieName(),
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *webService) startSession(w http.ResponseWriter, session ironapi.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     mycontext.SessionCookieName(),
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// redirectTarget keeps redirects on-site: only local paths are honoured.
func redirectTarget(next string) string {
	if len(next) > 1 && next[0] == '/' && next[1] != '/' {
		return next
	}
	return "/"
}
