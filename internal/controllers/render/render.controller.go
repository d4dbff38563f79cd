package renderController

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"server/config"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/pdfmap"
	"server/internal/repositories"
	"strings"
	"time"
)

// RenderController asks the external PDF service to fill the official
// template. One request per download, no retry; a failed render surfaces
// as a generic error to the user.
type RenderController struct {
	applicationRepo repositories.ApplicationRepository
	config          config.Config
	client          *http.Client
	log             logger.Logger
}

func New(applicationRepo repositories.ApplicationRepository, config config.Config) *RenderController {
	return &RenderController{
		applicationRepo: applicationRepo,
		config:          config,
		client:          &http.Client{Timeout: 60 * time.Second},
		log:             logger.New("RenderController"),
	}
}

type renderRequest struct {
	Form   map[string]any `json:"form"`
	Fields map[string]any `json:"fields"`
}

// Download renders the submitted, paid application and returns the PDF
// bytes with the download filename.
func (rc *RenderController) Download(ctx context.Context, user User, formID string) (string, []byte, error) {
	log := rc.log.Function("Download")

	application, err := rc.applicationRepo.GetByID(ctx, formID)
	if err != nil {
		return "", nil, err
	}
	if application.UserID != user.ID {
		return "", nil, log.Error("application not owned by user", "formID", formID, "userID", user.ID)
	}
	if application.Status != StatusSubmitted {
		return "", nil, log.Error("application is not submitted", "formID", formID, "status", application.Status)
	}
	if !application.IsPaid() {
		return "", nil, log.Error("application is not paid", "formID", formID)
	}

	record, err := application.Record()
	if err != nil {
		return "", nil, log.Err("failed to decode application payload", err, "formID", formID)
	}

	pdf, err := rc.render(ctx, renderRequest{
		Form:   record,
		Fields: pdfmap.Map(record),
	})
	if err != nil {
		return "", nil, err
	}

	return downloadFilename(record.Str("last_name"), record.Str("first_name")), pdf, nil
}

func (rc *RenderController) render(ctx context.Context, request renderRequest) ([]byte, error) {
	log := rc.log.Function("render")

	body, err := json.Marshal(request)
	if err != nil {
		return nil, log.Err("failed to encode render request", err)
	}

	url := strings.TrimRight(rc.config.PdfServiceURL, "/") + "/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, log.Err("failed to build render request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, log.Err("pdf service request failed", err, "url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, log.Error("pdf service returned an error", "status", resp.StatusCode)
	}

	if contentType := resp.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "application/pdf") {
		return nil, log.Error("pdf service returned unexpected content type", "contentType", contentType)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, log.Err("failed to read pdf response", err)
	}

	return pdf, nil
}

// downloadFilename builds N400_<last>_<first>.pdf with whitespace replaced
// by underscores.
func downloadFilename(lastName, firstName string) string {
	sanitize := func(s string) string {
		return strings.Join(strings.Fields(s), "_")
	}

	last := sanitize(lastName)
	first := sanitize(firstName)

	switch {
	case last == "" && first == "":
		return "N400.pdf"
	case first == "":
		return fmt.Sprintf("N400_%s.pdf", last)
	case last == "":
		return fmt.Sprintf("N400_%s.pdf", first)
	default:
		return fmt.Sprintf("N400_%s_%s.pdf", last, first)
	}
}
