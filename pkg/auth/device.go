package auth

import (
	"regexp"
	"strings"

	z "github.com/Oudwins/zog"

	"campuscctv.xyz/inventory-service/pkg/common"
)

// DeviceCredentials are the headers a heartbeat device sends on the public
// ingestion path.
type DeviceCredentials struct {
	Token        string
	ID           string
	UniqueNumber string
}

type DeviceIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var deviceCredentialsSchema = z.Struct(z.Shape{
	"Token": z.String().
		Min(10, z.Message("Token must be at least 10 characters long")).
		Required(z.Message("Token is required")),
	"ID": z.String().
		Match(regexp.MustCompile(`^[0-9a-fA-F]{24}$`), z.Message("ID must be a 24-character hex string")).
		Required(z.Message("ID is required")),
	"UniqueNumber": z.String().
		Match(regexp.MustCompile(`^\d+$`), z.Message("Unique number must be numeric")).
		Required(z.Message("Unique number is required")),
})

var devicePaths = []struct{ field, header string }{
	{"token", common.HeaderDeviceToken},
	{"id", common.HeaderDeviceID},
	{"uniquenumber", common.HeaderDeviceUniqueNumber},
}

// ValidateDeviceCredentials returns the issues per bad header, named by the
// header they came from, in header order.
func ValidateDeviceCredentials(creds *DeviceCredentials) []DeviceIssue {
	byField := map[string][]string{}
	for key, list := range deviceCredentialsSchema.Validate(creds) {
		if key == "$first" {
			continue
		}
		field := strings.ToLower(key)
		for _, issue := range list {
			byField[field] = append(byField[field], issue.Message)
		}
	}

	var issues []DeviceIssue
	for _, p := range devicePaths {
		for _, msg := range byField[p.field] {
			issues = append(issues, DeviceIssue{Path: p.header, Message: msg})
		}
	}
	return issues
}
