package cctv

import (
	"campuscctv.xyz/inventory-service/pkg/models"
)

type Outcome string

const (
	OutcomeFullSuccess    Outcome = "full_success"
	OutcomePartialSuccess Outcome = "partial_success"
	OutcomeTotalFailure   Outcome = "total_failure"
)

// Classify is full success when nothing was rejected, total failure when
// nothing was accepted, and partial success otherwise.
func Classify(accepted, rejected int) Outcome {
	switch {
	case rejected == 0:
		return OutcomeFullSuccess
	case accepted == 0:
		return OutcomeTotalFailure
	default:
		return OutcomePartialSuccess
	}
}

type CreatedCamera struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	MacID  *string             `json:"mac_id"`
	IP     *string             `json:"ip"`
	Zone   string              `json:"zone"`
	Pole   int                 `json:"pole"`
	Status models.CameraStatus `json:"status"`
}

type CreateValidationError struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Field string `json:"field"`
	Error string `json:"error"`
}

type CreateError struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

type BulkCreateSummary struct {
	TotalRequested   int `json:"totalRequested"`
	Created          int `json:"created"`
	ValidationErrors int `json:"validationErrors"`
	Errors           int `json:"errors"`
}

type BulkCreateDetails struct {
	Created          []CreatedCamera         `json:"created"`
	ValidationErrors []CreateValidationError `json:"validationErrors"`
	Errors           []CreateError           `json:"errors"`
}

type BulkCreateReport struct {
	Success bool              `json:"success"`
	Outcome Outcome           `json:"outcome"`
	Summary BulkCreateSummary `json:"summary"`
	Details BulkCreateDetails `json:"details"`
}

func newBulkCreateReport(total int) *BulkCreateReport {
	return &BulkCreateReport{
		Summary: BulkCreateSummary{TotalRequested: total},
		Details: BulkCreateDetails{
			Created:          []CreatedCamera{},
			ValidationErrors: []CreateValidationError{},
			Errors:           []CreateError{},
		},
	}
}

func (r *BulkCreateReport) accept(camera *models.Camera) {
	r.Details.Created = append(r.Details.Created, CreatedCamera{
		ID:     camera.ID,
		Name:   camera.Name,
		MacID:  camera.MacID,
		IP:     camera.IP,
		Zone:   camera.ZoneID,
		Pole:   camera.Pole,
		Status: camera.Status,
	})
}

func (r *BulkCreateReport) reject(index int, name, field, message string) {
	r.Details.ValidationErrors = append(r.Details.ValidationErrors, CreateValidationError{
		Index: index, Name: name, Field: field, Error: message,
	})
}

func (r *BulkCreateReport) fail(index int, name string, err error) {
	r.Details.Errors = append(r.Details.Errors, CreateError{Index: index, Name: name, Error: err.Error()})
}

func (r *BulkCreateReport) finish() {
	r.Summary.Created = len(r.Details.Created)
	r.Summary.ValidationErrors = len(r.Details.ValidationErrors)
	r.Summary.Errors = len(r.Details.Errors)
	r.Outcome = Classify(r.Summary.Created, r.Summary.ValidationErrors+r.Summary.Errors)
	r.Success = r.Summary.Created > 0
}

type UpdatedCamera struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	IP             string              `json:"ip"`
	PreviousStatus models.CameraStatus `json:"previousStatus"`
	NewStatus      models.CameraStatus `json:"newStatus"`
}

type StatusError struct {
	IP    string `json:"ip"`
	Error string `json:"error"`
}

type BulkStatusSummary struct {
	TotalRequested int `json:"totalRequested"`
	Updated        int `json:"updated"`
	NotFound       int `json:"notFound"`
	Errors         int `json:"errors"`
}

type BulkStatusDetails struct {
	Updated  []UpdatedCamera `json:"updated"`
	NotFound []string        `json:"notFound"`
	Errors   []StatusError   `json:"errors"`
}

type BulkStatusReport struct {
	Success bool              `json:"success"`
	Outcome Outcome           `json:"outcome"`
	Summary BulkStatusSummary `json:"summary"`
	Details BulkStatusDetails `json:"details"`
}

func newBulkStatusReport(total int) *BulkStatusReport {
	return &BulkStatusReport{
		Summary: BulkStatusSummary{TotalRequested: total},
		Details: BulkStatusDetails{
			Updated:  []UpdatedCamera{},
			NotFound: []string{},
			Errors:   []StatusError{},
		},
	}
}

func (r *BulkStatusReport) finish() {
	r.Summary.Updated = len(r.Details.Updated)
	r.Summary.NotFound = len(r.Details.NotFound)
	r.Summary.Errors = len(r.Details.Errors)
	r.Outcome = Classify(r.Summary.Updated, r.Summary.NotFound+r.Summary.Errors)
	r.Success = r.Summary.Updated > 0
}
