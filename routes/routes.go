package routes

import (
	"net/http"

	"cadenza/admin"
	"cadenza/artists"
	"cadenza/auth"
	"cadenza/bookings"
	"cadenza/calendar"
	"cadenza/contact"
	"cadenza/festivals"
	"cadenza/labels"
	"cadenza/middleware"
	"cadenza/profile"
	"cadenza/ratelim"
	"cadenza/search"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
	router.POST("/api/auth/resend-verification", ratelim.RateLimit(auth.ResendVerification))
	router.POST("/api/auth/verify-email", ratelim.RateLimit(auth.VerifyEmail))
}

func AddArtistRoutes(router *httprouter.Router) {
	router.GET("/api/artists", artists.GetArtists)
	router.GET("/api/artists/featured", artists.GetFeaturedArtists)
	router.GET("/api/artist/:slug", artists.GetArtistBySlug)

	router.POST("/api/artists", middleware.RequireRole("admin", artists.CreateArtist))
	router.PUT("/api/artist/:id", middleware.RequireRole("admin", artists.UpdateArtist))
	router.DELETE("/api/artist/:id", middleware.RequireRole("admin", artists.DeleteArtistByID))
}

func AddLabelRoutes(router *httprouter.Router) {
	router.GET("/api/labels", labels.GetLabels)
	router.GET("/api/label/:slug", labels.GetLabelBySlug)
	router.POST("/api/labels", middleware.RequireRole("admin", labels.CreateLabel))
}

func AddFestivalRoutes(router *httprouter.Router) {
	router.GET("/api/festivals", festivals.GetFestivals)
	router.GET("/api/festivals/count", festivals.GetFestivalsCount)
	router.GET("/api/festival/:slug", festivals.GetFestivalBySlug)
	router.GET("/api/festival/:slug/qr", festivals.ShareQR)

	router.POST("/api/festivals", middleware.RequireRole("admin", festivals.CreateFestival))
	router.PUT("/api/festival/:id", middleware.RequireRole("admin", festivals.UpdateFestival))
	router.DELETE("/api/festival/:id", middleware.RequireRole("admin", festivals.DeleteFestival))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", ratelim.RateLimit(middleware.Authenticate(bookings.CreateBooking)))
	router.GET("/api/bookings", middleware.RequireRole("admin", bookings.GetBookings))
	router.GET("/api/bookings/:id", middleware.Authenticate(bookings.GetBooking))
	router.PUT("/api/bookings/:id/status", middleware.RequireRole("admin", bookings.UpdateBookingStatus))
	router.PATCH("/api/bookings/:id/status", middleware.RequireRole("admin", bookings.UpdateBookingStatus))
	router.GET("/api/bookings/:id/print", middleware.Authenticate(bookings.PrintBooking))
	router.GET("/ws/bookings", middleware.RequireRole("admin", bookings.LiveStream))
}

func AddCalendarRoutes(router *httprouter.Router) {
	router.GET("/api/calendar", middleware.OptionalAuth(calendar.GetCalendar))
}

func AddSearchRoutes(router *httprouter.Router) {
	router.GET("/api/search", ratelim.RateLimit(search.QuickSearch))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetMyProfile))
	router.PUT("/api/profile", ratelim.RateLimit(middleware.Authenticate(profile.EditProfile)))

	router.POST("/api/favorites/toggle", middleware.OptionalAuth(profile.ToggleFavorite))
	router.GET("/api/profile/favorites", middleware.Authenticate(profile.GetFavorites))
	router.DELETE("/api/profile/favorites/:slug", middleware.Authenticate(profile.RemoveFavorite))

	router.GET("/api/profile/notifications", middleware.Authenticate(profile.GetNotifications))
	router.PUT("/api/profile/notifications/:id/read", middleware.Authenticate(profile.MarkNotificationRead))
	router.GET("/ws/notifications", middleware.Authenticate(profile.NotificationStream))
}

// AddUploadRoutes registers the avatar endpoint on the configured path.
// Local and deployed installs expose it on different paths, so the path is
// an argument, not a constant.
func AddUploadRoutes(router *httprouter.Router, path string) {
	if path == "" {
		path = "/api/upload-avatar"
	}
	router.POST(path, ratelim.RateLimit(middleware.Authenticate(profile.UploadAvatar)))
}

func AddContactRoutes(router *httprouter.Router) {
	router.POST("/api/contact", ratelim.RateLimit(contact.SendContact))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.POST("/api/admin/login", ratelim.RateLimit(admin.Login))
	router.GET("/api/admin/session", admin.Session)
	router.GET("/api/admin/users", middleware.RequireRole("admin", admin.GetUsers))
	router.PUT("/api/admin/users/:id", middleware.RequireRole("admin", admin.UpdateUser))
	router.DELETE("/api/admin/users/:id", middleware.RequireRole("admin", admin.DeleteUser))
	router.GET("/api/admin/dashboard", middleware.RequireRole("admin", admin.Dashboard))
}
