package controllers

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoa-portal/api-go/models"
	"github.com/hoa-portal/api-go/storage"
	"github.com/hoa-portal/api-go/store"
	"github.com/hoa-portal/api-go/utils"
)

const (
	maxImagesPerComplaint = 5
	allComplaintsLimit    = 100
	recentComplaintsLimit = 5
	submittedAtLayout     = "2006-01-02 15:04"
)

type ComplaintController struct {
	Users   store.UserDirectory
	Reports store.ReportStore
	Objects storage.ObjectStore

	// Now is swappable so tests can pin the clock.
	Now func() time.Time
}

func NewComplaintController(users store.UserDirectory, reports store.ReportStore, objects storage.ObjectStore) *ComplaintController {
	return &ComplaintController{
		Users:   users,
		Reports: reports,
		Objects: objects,
		Now:     time.Now,
	}
}

// complaintRow is a report enriched with the owner's display name for the
// admin table.
type complaintRow struct {
	models.Report
	HomeownerName string `json:"homeowner_name"`
}

// SubmitComplaint runs the submission pipeline: validate, generate the report
// ID, resolve the submitter, upload attachments under the report's prefix,
// then insert the row. An unknown email fails the whole request before any
// upload happens.
func (cc *ComplaintController) SubmitComplaint(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Invalid multipart form"})
		return
	}

	category := strings.TrimSpace(c.PostForm("complaintType"))
	description := strings.TrimSpace(c.PostForm("complaintText"))
	latitude := strings.TrimSpace(c.PostForm("latitude"))
	longitude := strings.TrimSpace(c.PostForm("longitude"))
	complaintDate := strings.TrimSpace(c.PostForm("complaintDate"))
	email := strings.TrimSpace(c.PostForm("email"))

	if msg := validateSubmission(category, description, latitude, longitude, email); msg != "" {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: msg})
		return
	}

	images := form.File["images"]
	if len(images) > maxImagesPerComplaint {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "A complaint may include at most 5 images"})
		return
	}

	// The report ID exists before any upload so the object keys can embed it.
	reportID := uuid.New().String()

	user, err := cc.Users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "User not found"})
		return
	}
	if err != nil {
		log.Printf("submitComplaint: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to submit complaint"})
		return
	}

	imageURLs, uploadedKeys := cc.uploadImages(c.Request.Context(), user.ID, reportID, images)

	report := models.Report{
		ReportID:    reportID,
		UserID:      user.ID,
		Category:    category,
		Description: description,
		SubmittedAt: cc.normalizeSubmittedAt(complaintDate),
		Latitude:    latitude,
		Longitude:   longitude,
		Status:      models.StatusUnresolved,
		ImageURLs:   imageURLs,
		Comments:    []string{},
	}

	if err := cc.Reports.Insert(c.Request.Context(), &report); err != nil {
		log.Printf("submitComplaint: insert failed for report %s: %v", reportID, err)
		cc.cleanupUploads(c.Request.Context(), uploadedKeys)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to submit complaint"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Success: true})
}

// uploadImages stores each attachment under {userID}/{reportID}/. A failed
// upload is logged and skipped; the complaint still goes through with the
// attachments that made it.
func (cc *ComplaintController) uploadImages(ctx context.Context, userID, reportID string, images []*multipart.FileHeader) ([]string, []string) {
	urls := []string{}
	keys := []string{}
	for i, fh := range images {
		key := utils.AttachmentKey(userID, reportID, cc.Now().UnixMilli(), i, fh.Filename)

		file, err := fh.Open()
		if err != nil {
			log.Printf("submitComplaint: failed to open %s: %v", fh.Filename, err)
			continue
		}

		url, err := cc.Objects.Upload(ctx, key, fh.Header.Get("Content-Type"), file)
		file.Close()
		if err != nil {
			log.Printf("submitComplaint: failed to upload %s: %v", key, err)
			continue
		}

		urls = append(urls, url)
		keys = append(keys, key)
	}
	return urls, keys
}

// cleanupUploads is the compensating step for a row-insert failure: without
// it the bucket keeps objects no report row references.
func (cc *ComplaintController) cleanupUploads(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := cc.Objects.Delete(ctx, key); err != nil {
			log.Printf("submitComplaint: failed to clean up %s: %v", key, err)
		}
	}
}

// normalizeSubmittedAt expands a date-only client value with the current
// clock time; a missing value defaults to now. Output is "YYYY-MM-DD HH:MM".
func (cc *ComplaintController) normalizeSubmittedAt(complaintDate string) string {
	now := cc.Now()
	if complaintDate == "" {
		return now.Format(submittedAtLayout)
	}
	if day, err := time.Parse("2006-01-02", complaintDate); err == nil {
		return day.Format("2006-01-02") + " " + now.Format("15:04")
	}
	if t, err := time.Parse(submittedAtLayout, complaintDate); err == nil {
		return t.Format(submittedAtLayout)
	}
	return now.Format(submittedAtLayout)
}

func validateSubmission(category, description, latitude, longitude, email string) string {
	switch {
	case email == "":
		return "Email is required"
	case category == "":
		return "Complaint type is required"
	case description == "":
		return "Complaint description is required"
	case latitude == "" || longitude == "":
		return "A location must be selected"
	}
	return ""
}

// GetComplaints lists the newest reports for the admin console, each row
// carrying the owner's display name. Owners are resolved with one batched
// query, not one per report.
func (cc *ComplaintController) GetComplaints(c *gin.Context) {
	reports, err := cc.Reports.ListRecent(c.Request.Context(), allComplaintsLimit)
	if err != nil {
		log.Printf("getComplaints: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to load complaints"})
		return
	}

	ownerIDs := make([]string, 0, len(reports))
	seen := make(map[string]bool, len(reports))
	for _, r := range reports {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ownerIDs = append(ownerIDs, r.UserID)
		}
	}

	owners, err := cc.Users.FindByIDs(c.Request.Context(), ownerIDs)
	if err != nil {
		log.Printf("getComplaints: owner lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to load complaints"})
		return
	}

	rows := make([]complaintRow, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, complaintRow{Report: r, HomeownerName: owners[r.UserID].Name})
	}

	c.JSON(http.StatusOK, ComplaintsResponse{Success: true, Complaints: rows})
}

// GetRecentComplaints returns a homeowner's five newest reports. An unknown
// email is an error, not an empty list.
func (cc *ComplaintController) GetRecentComplaints(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Email is required"})
		return
	}

	user, err := cc.Users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "User not found"})
		return
	}
	if err != nil {
		log.Printf("getRecentComplaints: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to load complaints"})
		return
	}

	reports, err := cc.Reports.ListByOwner(c.Request.Context(), user.ID, recentComplaintsLimit)
	if err != nil {
		log.Printf("getRecentComplaints: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to load complaints"})
		return
	}

	c.JSON(http.StatusOK, ComplaintsResponse{Success: true, Complaints: reports})
}
