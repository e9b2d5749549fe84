package profile

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cadenza/db"
	"cadenza/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	_ "golang.org/x/image/webp"
)

const maxAvatarBytes = 10 << 20

// UploadConfig selects where avatar files land and how the endpoint is
// described in failure messages. Development and deployed installs post to
// different paths, so the config is injected rather than sniffed from the
// environment at request time.
type UploadConfig struct {
	Dir     string // filesystem directory avatars are written to
	URLBase string // public prefix prepended to saved filenames
	Label   string // "local endpoint" or "deployed endpoint"
}

var Uploads = UploadConfig{
	Dir:     filepath.Join("static", "uploads", "avatar"),
	URLBase: "/static/uploads/avatar",
	Label:   "local endpoint",
}

// ConfigureUploads swaps the active upload target. Called once at startup.
func ConfigureUploads(cfg UploadConfig) {
	if cfg.Dir != "" {
		Uploads.Dir = cfg.Dir
	}
	if cfg.URLBase != "" {
		Uploads.URLBase = cfg.URLBase
	}
	if cfg.Label != "" {
		Uploads.Label = cfg.Label
	}
}

var allowedAvatarExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

func uploadFailure(w http.ResponseWriter, status int, msg string) {
	utils.RespondWithJSON(w, status, utils.M{"error": msg})
}

// UploadAvatar accepts one image up to 10 MB, stores it with a 200px
// thumbnail, and points the caller's profile at the new URL.
//
// POST /api/upload-avatar
func UploadAvatar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		uploadFailure(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes+512)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		uploadFailure(w, http.StatusRequestEntityTooLarge, "Image must be 10 MB or smaller")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		uploadFailure(w, http.StatusBadRequest, "No avatar file in request")
		return
	}
	defer file.Close()

	if header.Size > maxAvatarBytes {
		uploadFailure(w, http.StatusRequestEntityTooLarge, "Image must be 10 MB or smaller")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedAvatarExts[ext] {
		uploadFailure(w, http.StatusBadRequest, "Unsupported image format")
		return
	}

	buf, err := io.ReadAll(file)
	if err != nil {
		uploadFailure(w, http.StatusInternalServerError,
			fmt.Sprintf("Upload to %s failed: could not read file", Uploads.Label))
		return
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		uploadFailure(w, http.StatusBadRequest, "File is not a decodable image")
		return
	}

	if err := os.MkdirAll(Uploads.Dir, 0o755); err != nil {
		uploadFailure(w, http.StatusInternalServerError,
			fmt.Sprintf("Upload to %s failed: storage unavailable", Uploads.Label))
		return
	}

	filename := userID + ext
	if err := os.WriteFile(filepath.Join(Uploads.Dir, filename), buf, 0o644); err != nil {
		uploadFailure(w, http.StatusInternalServerError,
			fmt.Sprintf("Upload to %s failed: could not save file", Uploads.Label))
		return
	}

	// Thumbnail keeps aspect ratio at 200px wide, always jpg.
	thumb := imaging.Resize(img, 200, 0, imaging.Lanczos)
	thumbDir := filepath.Join(Uploads.Dir, "thumb")
	if err := os.MkdirAll(thumbDir, 0o755); err == nil {
		if out, err := os.Create(filepath.Join(thumbDir, userID+".jpg")); err == nil {
			_ = jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
			out.Close()
		}
	}

	url := Uploads.URLBase + "/" + filename
	if _, err := db.ProfilesCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"avatar_url": url}},
	); err != nil {
		uploadFailure(w, http.StatusInternalServerError,
			fmt.Sprintf("Upload to %s failed: profile not updated", Uploads.Label))
		return
	}

	InvalidateCachedProfile(userID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "url": url})
}
