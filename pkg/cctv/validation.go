package cctv

import (
	"fmt"
	"regexp"
	"strings"

	z "github.com/Oudwins/zog"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/models"
)

var (
	macAddressPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)
	ipv4Pattern       = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
)

var cameraNameSchema = z.String().
	Min(2, z.Message("Camera name must be at least 2 characters long.")).
	Max(100, z.Message("Camera name must be at most 100 characters long.")).
	Required(z.Message("Camera name is required."))

var latitudeSchema = z.Float64().
	GTE(-90, z.Message("Latitude must be between -90 and 90.")).
	LTE(90, z.Message("Latitude must be between -90 and 90."))

var longitudeSchema = z.Float64().
	GTE(-180, z.Message("Longitude must be between -180 and 180.")).
	LTE(180, z.Message("Longitude must be between -180 and 180."))

var zoneIDSchema = z.String().Required(z.Message("Zone ID is required."))

var poleSchema = z.Int().GTE(0, z.Message("Pole number must be positive."))

var locationSchema = z.String().Max(200, z.Message("Location must be at most 200 characters long."))

var macIDSchema = z.String().Match(macAddressPattern, z.Message("Invalid MAC address format."))

var ipSchema = z.String().Match(ipv4Pattern, z.Message("Invalid IP address format."))

var cameraStatuses = []string{string(models.CameraStatusActive), string(models.CameraStatusInactive)}

var cameraStatusSchema = z.String().
	OneOf(cameraStatuses, z.Message("Status must be either active or inactive."))

var requiredStatusSchema = z.String().
	OneOf(cameraStatuses, z.Message("Status must be either active or inactive.")).
	Required(z.Message("Status must be either active or inactive."))

var notesSchema = z.String().Max(500, z.Message("Notes must be at most 500 characters long."))

var zoneNameSchema = z.String().
	Min(2, z.Message("Zone name must be at least 2 characters long.")).
	Max(100, z.Message("Zone name must be at most 100 characters long.")).
	Required(z.Message("Zone name is required."))

var zoneDescriptionSchema = z.String().Max(500, z.Message("Description must be at most 500 characters long."))

var zoneLocationSchema = z.String().Max(200, z.Message("Location must be at most 200 characters long."))

var statusIPSchema = z.String().
	Match(ipv4Pattern, z.Message("Invalid IP address format.")).
	Required(z.Message("IP address is required."))

var userNameSchema = z.String().
	Min(2, z.Message("Name must be at least 2 characters long.")).
	Max(50, z.Message("Name must be at most 50 characters long.")).
	Required(z.Message("Name is required."))

var userEmailSchema = z.String().
	Email(z.Message("Invalid email format.")).
	Required(z.Message("Email is required."))

var userRoleSchema = z.String().
	OneOf([]string{auth.RoleAdmin, auth.RoleUser}, z.Message("Role must be either admin or user.")).
	Required(z.Message("Role is required."))

// newPasswordSchema is the strength rule for any password being set:
// letters and digits only, with at least one of each case and a digit.
func newPasswordSchema(label string) *z.StringSchema[string] {
	return z.String().
		Min(6, z.Message(label+" must be at least 6 characters long.")).
		Max(72, z.Message(label+" must be at most 72 characters long.")).
		TestFunc(func(val *string, _ z.Ctx) bool { return strongPassword(*val) },
			z.Message(label+" must contain at least one uppercase letter, one lowercase letter, and one number.")).
		Required(z.Message(label + " is required."))
}

func strongPassword(pw string) bool {
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			return false
		}
	}
	return lower && upper && digit
}

var (
	userPasswordSchema    = newPasswordSchema("Password")
	changedPasswordSchema = newPasswordSchema("New password")
	currentPasswordSchema = z.String().Required(z.Message("Current password is required."))
	loginPasswordSchema   = z.String().Required(z.Message("Password is required."))
)

// FieldIssue is one rejected field; Path is dotted, e.g. "3.mac_id".
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type issueCollector struct {
	prefix string
	issues []FieldIssue
}

func (ic *issueCollector) add(field, message string) {
	path := field
	if ic.prefix != "" {
		path = ic.prefix + "." + field
	}
	ic.issues = append(ic.issues, FieldIssue{Path: path, Message: message})
}

func (ic *issueCollector) zog(field string, issues z.ZogIssueList) {
	for _, issue := range issues {
		ic.add(field, issue.Message)
	}
}

func (ic *issueCollector) required(field, name string, present bool) bool {
	if !present {
		ic.add(field, name+" is required.")
	}
	return present
}

// NormalizeCameraInput trims surrounding whitespace from every text field.
func NormalizeCameraInput(in *CameraInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Zone = strings.TrimSpace(in.Zone)
	in.Location = strings.TrimSpace(in.Location)
	in.MacID = strings.TrimSpace(in.MacID)
	in.IP = strings.TrimSpace(in.IP)
	in.Status = strings.TrimSpace(in.Status)
	in.Notes = strings.TrimSpace(in.Notes)
}

func validateCameraInput(ic *issueCollector, in *CameraInput) {
	NormalizeCameraInput(in)
	ic.zog("name", cameraNameSchema.Validate(&in.Name))
	if ic.required("latitude", "Latitude", in.Latitude != nil) {
		ic.zog("latitude", latitudeSchema.Validate(in.Latitude))
	}
	if ic.required("longitude", "Longitude", in.Longitude != nil) {
		ic.zog("longitude", longitudeSchema.Validate(in.Longitude))
	}
	ic.zog("zone", zoneIDSchema.Validate(&in.Zone))
	if ic.required("pole", "Pole number", in.Pole != nil) {
		ic.zog("pole", poleSchema.Validate(in.Pole))
	}
	if in.Location != "" {
		ic.zog("location", locationSchema.Validate(&in.Location))
	}
	if in.MacID != "" {
		ic.zog("mac_id", macIDSchema.Validate(&in.MacID))
	}
	if in.IP != "" {
		ic.zog("ip", ipSchema.Validate(&in.IP))
	}
	if in.Status != "" {
		ic.zog("status", cameraStatusSchema.Validate(&in.Status))
	}
	if in.Notes != "" {
		ic.zog("notes", notesSchema.Validate(&in.Notes))
	}
}

// ValidateCameraInput checks one camera's fields and trims them in place.
func ValidateCameraInput(in *CameraInput) []FieldIssue {
	ic := &issueCollector{}
	validateCameraInput(ic, in)
	return ic.issues
}

func ValidateCameraUpdate(u *CameraUpdate) []FieldIssue {
	ic := &issueCollector{}
	if u.IsEmpty() {
		ic.add("body", "At least one field must be provided for update.")
		return ic.issues
	}
	if u.Name != nil {
		*u.Name = strings.TrimSpace(*u.Name)
		ic.zog("name", cameraNameSchema.Validate(u.Name))
	}
	if u.Latitude != nil {
		ic.zog("latitude", latitudeSchema.Validate(u.Latitude))
	}
	if u.Longitude != nil {
		ic.zog("longitude", longitudeSchema.Validate(u.Longitude))
	}
	if u.Zone != nil {
		*u.Zone = strings.TrimSpace(*u.Zone)
		ic.zog("zone", zoneIDSchema.Validate(u.Zone))
	}
	if u.Pole != nil {
		ic.zog("pole", poleSchema.Validate(u.Pole))
	}
	if u.Location != nil {
		*u.Location = strings.TrimSpace(*u.Location)
		ic.zog("location", locationSchema.Validate(u.Location))
	}
	if u.MacID != nil {
		*u.MacID = strings.TrimSpace(*u.MacID)
		if *u.MacID != "" {
			ic.zog("mac_id", macIDSchema.Validate(u.MacID))
		}
	}
	if u.IP != nil {
		*u.IP = strings.TrimSpace(*u.IP)
		if *u.IP != "" {
			ic.zog("ip", ipSchema.Validate(u.IP))
		}
	}
	if u.Status != nil {
		ic.zog("status", requiredStatusSchema.Validate(u.Status))
	}
	if u.Notes != nil {
		ic.zog("notes", notesSchema.Validate(u.Notes))
	}
	return ic.issues
}

func ValidateZoneInput(in *ZoneInput) []FieldIssue {
	ic := &issueCollector{}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	ic.zog("name", zoneNameSchema.Validate(&in.Name))
	ic.zog("description", zoneDescriptionSchema.Validate(&in.Description))
	ic.zog("location", zoneLocationSchema.Validate(&in.Location))
	return ic.issues
}

func ValidateZoneUpdate(u *ZoneUpdate) []FieldIssue {
	ic := &issueCollector{}
	if u.Name == nil && u.Description == nil && u.Location == nil {
		ic.add("body", "At least one field must be provided for update.")
		return ic.issues
	}
	if u.Name != nil {
		*u.Name = strings.TrimSpace(*u.Name)
		ic.zog("name", zoneNameSchema.Validate(u.Name))
	}
	if u.Description != nil {
		ic.zog("description", zoneDescriptionSchema.Validate(u.Description))
	}
	if u.Location != nil {
		ic.zog("location", zoneLocationSchema.Validate(u.Location))
	}
	return ic.issues
}

// ValidateUserInput trims name and lowercases email before validating.
func ValidateUserInput(in *UserInput) []FieldIssue {
	ic := &issueCollector{}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	ic.zog("name", userNameSchema.Validate(&in.Name))
	ic.zog("email", userEmailSchema.Validate(&in.Email))
	ic.zog("password", userPasswordSchema.Validate(&in.Password))
	ic.zog("role", userRoleSchema.Validate(&in.Role))
	return ic.issues
}

func ValidateLogin(email, password *string) []FieldIssue {
	ic := &issueCollector{}
	*email = strings.ToLower(strings.TrimSpace(*email))
	ic.zog("email", userEmailSchema.Validate(email))
	ic.zog("password", loginPasswordSchema.Validate(password))
	return ic.issues
}

func ValidatePasswordChange(in *PasswordChange) []FieldIssue {
	ic := &issueCollector{}
	ic.zog("currentPassword", currentPasswordSchema.Validate(&in.CurrentPassword))
	ic.zog("newPassword", changedPasswordSchema.Validate(&in.NewPassword))
	return ic.issues
}

func validateBatchSize(ic *issueCollector, n int, noun string) bool {
	if n == 0 {
		ic.add("body", fmt.Sprintf("At least one %s is required.", noun))
		return false
	}
	if n > MaxBatchSize {
		ic.add("body", fmt.Sprintf("Maximum %d %ss can be processed at once.", MaxBatchSize, noun))
		return false
	}
	return true
}

// duplicateCheck reports whether any non-empty key occurs twice.
func duplicateCheck[T any](items []T, key func(T) string) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

// ValidateBulkCreate is the request-level gate for a creation batch: size,
// per-record fields, and no repeated name, MAC or IP inside the batch.
// Any issue rejects the whole batch.
func ValidateBulkCreate(inputs []CameraInput) []FieldIssue {
	ic := &issueCollector{}
	if !validateBatchSize(ic, len(inputs), "camera") {
		return ic.issues
	}
	for i := range inputs {
		record := &issueCollector{prefix: fmt.Sprintf("%d", i)}
		validateCameraInput(record, &inputs[i])
		ic.issues = append(ic.issues, record.issues...)
	}
	if duplicateCheck(inputs, func(in CameraInput) string { return in.Name }) {
		ic.add("body", "Duplicate camera names are not allowed.")
	}
	if duplicateCheck(inputs, func(in CameraInput) string { return macKey(in.MacID) }) {
		ic.add("body", "Duplicate MAC addresses are not allowed.")
	}
	if duplicateCheck(inputs, func(in CameraInput) string { return in.IP }) {
		ic.add("body", "Duplicate IP addresses are not allowed.")
	}
	return ic.issues
}

// ValidateBulkStatus is the request-level gate for a heartbeat batch.
func ValidateBulkStatus(inputs []StatusInput) []FieldIssue {
	ic := &issueCollector{}
	if !validateBatchSize(ic, len(inputs), "status update") {
		return ic.issues
	}
	for i := range inputs {
		inputs[i].IP = strings.TrimSpace(inputs[i].IP)
		record := &issueCollector{prefix: fmt.Sprintf("%d", i)}
		record.zog("ip", statusIPSchema.Validate(&inputs[i].IP))
		if inputs[i].Status == nil {
			record.add("status", "Status is required.")
		}
		ic.issues = append(ic.issues, record.issues...)
	}
	if duplicateCheck(inputs, func(in StatusInput) string { return in.IP }) {
		ic.add("body", "Duplicate IP addresses are not allowed.")
	}
	return ic.issues
}
