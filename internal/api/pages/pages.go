package pages

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/api/middleware"
	"github.com/m04kA/SMC-PickupService/internal/domain"
	"github.com/m04kA/SMC-PickupService/internal/service/auth"
	"github.com/m04kA/SMC-PickupService/internal/service/bookings/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	msgInvalidCredentials = "Invalid username or password"
	msgLoadFailed         = "Bookings could not be loaded. Please try again later."
	msgInvalidRange       = "Invalid date range, expected YYYY-MM-DD."
)

// ParseTemplates разбирает встроенные шаблоны страниц
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// Pages HTML страницы администратора: вход, список и календарь
type Pages struct {
	tmpl     *template.Template
	bookings BookingService
	auth     AuthService
	cookies  SessionCookies
	location *time.Location
	now      func() time.Time
	logger   Logger
}

// New создает страницы администратора
func New(
	bookings BookingService,
	authService AuthService,
	cookies SessionCookies,
	location *time.Location,
	logger Logger,
) (*Pages, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}

	return &Pages{
		tmpl:     tmpl,
		bookings: bookings,
		auth:     authService,
		cookies:  cookies,
		location: location,
		now:      time.Now,
		logger:   logger,
	}, nil
}

type pageData struct {
	Title    string
	Username string
	Error    string
}

type loginData struct {
	pageData
}

type bookingsData struct {
	pageData
	Bookings []models.BookingResponse
}

type calendarData struct {
	pageData
	From string
	To   string
	Days []models.CalendarDay
}

// LoginForm GET /admin/login
func (p *Pages) LoginForm(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "login.html", loginData{pageData: pageData{Title: "Login"}})
}

// LoginSubmit POST /admin/login
func (p *Pages) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	session, err := p.auth.Login(r.Context(), username, password)
	if err != nil {
		data := loginData{pageData: pageData{Title: "Login", Username: username, Error: msgInvalidCredentials}}
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			p.logger.Error("POST /admin/login - Failed to log in: username=%s, error=%v", username, err)
		} else {
			p.logger.Warn("POST /admin/login - Invalid credentials: username=%s", username)
		}
		p.render(w, http.StatusUnauthorized, "login.html", data)
		return
	}

	if err := p.cookies.Set(w, session.Token, session.ExpiresAt); err != nil {
		p.logger.Error("POST /admin/login - Failed to encode session cookie: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	p.logger.Info("POST /admin/login - Admin logged in: username=%s", session.Username)
	http.Redirect(w, r, middleware.AdminPrefix, http.StatusSeeOther)
}

// Logout POST /admin/logout
func (p *Pages) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := p.cookies.Token(r); ok {
		if err := p.auth.Logout(r.Context(), token); err != nil {
			p.logger.Error("POST /admin/logout - Failed to revoke session: %v", err)
		}
	}

	p.cookies.Clear(w)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

// List GET /admin
// При ошибке хранилища показывается пустой список
func (p *Pages) List(w http.ResponseWriter, r *http.Request) {
	data := bookingsData{
		pageData: p.base(r, "Bookings"),
		Bookings: []models.BookingResponse{},
	}

	result, err := p.bookings.ListAll(r.Context())
	if err != nil {
		p.logger.Error("GET /admin - Failed to list bookings: %v", err)
		data.Error = msgLoadFailed
	} else {
		data.Bookings = result.Bookings
	}

	p.render(w, http.StatusOK, "bookings.html", data)
}

// Calendar GET /admin/calendar
func (p *Pages) Calendar(w http.ResponseWriter, r *http.Request) {
	data := calendarData{
		pageData: p.base(r, "Calendar"),
		Days:     []models.CalendarDay{},
	}

	from, to, err := models.ParseCalendarRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"), p.now(), p.location)
	if err != nil {
		p.logger.Warn("GET /admin/calendar - Invalid range: %v", err)
		data.Error = msgInvalidRange
		from, to, _ = models.ParseCalendarRange("", "", p.now(), p.location)
	}
	data.From = from.Format(domain.DateFormat)
	data.To = to.Format(domain.DateFormat)

	if data.Error == "" {
		result, err := p.bookings.Calendar(r.Context(), from, to)
		if err != nil {
			p.logger.Error("GET /admin/calendar - Failed to build calendar: %v", err)
			data.Error = msgLoadFailed
		} else {
			data.Days = result.Days
		}
	}

	p.render(w, http.StatusOK, "calendar.html", data)
}

func (p *Pages) base(r *http.Request, title string) pageData {
	data := pageData{Title: title}
	if session, ok := middleware.GetSession(r.Context()); ok {
		data.Username = session.Username
	}
	return data
}

func (p *Pages) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil {
		p.logger.Error("render %s: %v", name, err)
	}
}
