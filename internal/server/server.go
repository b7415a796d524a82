// Package server contains the HTTP handlers and routing for the application.
package server

import (
	"errors"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/middleware"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	db       *gorm.DB
	app      *fiber.App
	sessions *middleware.SessionManager

	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository

	authService    *service.AuthService
	postService    *service.PostService
	commentService *service.CommentService
	userService    *service.UserService

	// now is the clock used when annotating comments with relative times.
	now func() time.Time
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	s := newServerWithDB(cfg, db, cache.NewPostIndex(cache.GetClient()))
	return s, nil
}

// newServerWithDB wires the repositories, services and Fiber app around an
// existing database handle. Tests use it to inject fakes.
func newServerWithDB(cfg *config.Config, db *gorm.DB, postIndex *cache.PostIndex) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		sessions:    middleware.NewSessionManager(cfg),
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
	s.authService = service.NewAuthService(userRepo)
	s.postService = service.NewPostService(postRepo, postIndex)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	s.userService = service.NewUserService(userRepo)
	s.app = s.buildApp()
	return s
}

// buildApp assembles the Fiber application: views engine, middleware stack
// and the route table.
func (s *Server) buildApp() *fiber.App {
	engine := html.New(s.config.ViewsDir, ".html")
	engine.AddFunc("timeago", s.timeagoFunc())
	engine.AddFunc("gravatar", gravatarURL)

	app := fiber.New(fiber.Config{
		AppName:      "Inkwell Blog",
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: s.errorHandler,
	})

	app.Static("/static", s.config.StaticDir)

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.LoadUser(s.sessions, s.userRepo))

	s.registerRoutes(app)
	return app
}

func (s *Server) registerRoutes(app *fiber.App) {
	app.Get("/health", s.Health)

	app.Get("/", s.Index)
	app.Get("/about", s.About)
	app.Get("/contact", s.Contact)

	// Guest-only routes
	app.Get("/register", middleware.RequireGuest(), s.RegisterPage)
	app.Post("/register", middleware.RequireGuest(), s.Register)
	app.Get("/login", middleware.RequireGuest(), s.LoginPage)
	app.Post("/login", middleware.RequireGuest(), s.Login)
	app.Get("/logout", middleware.RequireAuth(s.sessions), s.Logout)

	// Posts. Comment submission stays open so anonymous submitters get the
	// redirect-to-login flow instead of a guard wall.
	app.Get("/post/:id", s.ShowPost)
	app.Post("/post/:id", s.AddComment)
	app.Get("/new-post", middleware.RequireAuth(s.sessions), s.NewPostPage)
	app.Post("/new-post", middleware.RequireAuth(s.sessions), s.CreatePost)
	app.Get("/edit-post/:id", middleware.RequireAuth(s.sessions), s.EditPostPage)
	app.Post("/edit-post/:id", middleware.RequireAuth(s.sessions), s.UpdatePost)
	app.Get("/delete/comment/:commentId/:postId", middleware.RequireAuth(s.sessions), s.DeleteComment)
	app.Get("/delete/:id", middleware.RequireAuth(s.sessions), s.DeletePost)

	// Admin panel
	app.Get("/admin-panel", middleware.RequireAdmin(s.sessions), s.AdminPanel)
	app.Post("/admin-panel", middleware.RequireAdmin(s.sessions), s.AdminPanel)
	app.Get("/edit-user/:id", middleware.RequireAdmin(s.sessions), s.EditUserPage)
	app.Post("/edit-user/:id", middleware.RequireAdmin(s.sessions), s.UpdateUser)
}

// App exposes the underlying Fiber application for serving and tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Shutdown gracefully stops the server and releases shared resources.
func (s *Server) Shutdown() error {
	err := s.app.Shutdown()
	cache.Close()
	return err
}

// errorHandler renders uncaught errors as HTML error pages.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code == fiber.StatusNotFound {
			message = "Page not found"
		}
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":   "Error",
		"Message": message,
	}, "layouts/main")
}
