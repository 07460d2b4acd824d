package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hoa-portal/api-go/storage"
	"github.com/hoa-portal/api-go/store"
	"github.com/hoa-portal/api-go/utils"
)

type AdminController struct {
	Users   store.UserDirectory
	Reports store.ReportStore
	Objects storage.ObjectStore
}

func NewAdminController(users store.UserDirectory, reports store.ReportStore, objects storage.ObjectStore) *AdminController {
	return &AdminController{Users: users, Reports: reports, Objects: objects}
}

// ListReports serves the raw report rows for the admin console.
func (a *AdminController) ListReports(c *gin.Context) {
	reports, err := a.Reports.ListRecent(c.Request.Context(), allComplaintsLimit)
	if err != nil {
		log.Printf("listReports: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, ReportsResponse{Success: true, Reports: reports})
}

// GetUser projects a user row down to the fields the report detail view shows.
func (a *AdminController) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := a.Users.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "User not found"})
		return
	}
	if err != nil {
		log.Printf("getUser: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"name":    user.Name,
		"address": user.Address,
	})
}

// ListImages lists a report's attachments. The path carries both IDs in one
// segment, "&"-separated, matching what the portal pages request.
func (a *AdminController) ListImages(c *gin.Context) {
	userID, reportID, ok := strings.Cut(c.Param("ids"), "&")
	if !ok || userID == "" || reportID == "" {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Expected userId&reportId"})
		return
	}

	keys, err := a.Objects.ListPrefix(c.Request.Context(), utils.AttachmentPrefix(userID, reportID))
	if err != nil {
		log.Printf("listImages: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to list images"})
		return
	}

	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		urls = append(urls, a.Objects.PublicURL(key))
	}

	c.JSON(http.StatusOK, ImagesResponse{Success: true, Images: urls})
}

// ListStaff lists the staff members of one group for the assignment table.
func (a *AdminController) ListStaff(c *gin.Context) {
	group := c.Param("group")

	staff, err := a.Users.ListByGroup(c.Request.Context(), group)
	if err != nil {
		log.Printf("listStaff: %v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to load staff"})
		return
	}

	rows := make([]gin.H, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, gin.H{
			"full_name": s.Name,
			"email":     s.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

type commentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// Comment appends one entry to a report's comment log. The append is a single
// atomic UPDATE in the store, so concurrent moderators never lose entries.
func (a *AdminController) Comment(c *gin.Context) {
	reportID := c.Param("reportId")

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Comment is required"})
		return
	}

	err := a.Reports.AppendComment(c.Request.Context(), reportID, req.Comment)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, StatusResponse{Success: false, Message: "Report not found"})
		return
	}
	if err != nil {
		log.Printf("comment: append failed for report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to add comment"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Success: true})
}

// Close appends the closing comment and flips status to closed in one
// statement, so the response can never claim success for half the work.
func (a *AdminController) Close(c *gin.Context) {
	reportID := c.Param("reportId")

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Comment is required"})
		return
	}

	err := a.Reports.CloseWithComment(c.Request.Context(), reportID, req.Comment)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, StatusResponse{Success: false, Message: "Report not found"})
		return
	}
	if err != nil {
		log.Printf("close: failed for report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Failed to close report"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Success: true})
}
