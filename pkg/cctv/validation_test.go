package cctv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuePaths(issues []FieldIssue) []string {
	paths := make([]string, 0, len(issues))
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

func issueMessages(issues []FieldIssue) []string {
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

func TestValidateCameraInput(t *testing.T) {
	in := CameraInput{
		Name:      "  Main Gate  ",
		Latitude:  ptr(12.5),
		Longitude: ptr(-77.0),
		Zone:      "zone-1",
		Pole:      ptr(0),
		MacID:     "00:1b:44:11:3a:b7",
		IP:        "192.168.1.10",
		Status:    "inactive",
	}

	issues := ValidateCameraInput(&in)
	assert.Empty(t, issues)
	assert.Equal(t, "Main Gate", in.Name)
}

func TestValidateCameraInput_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input CameraInput
		path  string
	}{
		{
			name:  "name too short",
			input: CameraInput{Name: "A", Latitude: ptr(0.0), Longitude: ptr(0.0), Zone: "z", Pole: ptr(1)},
			path:  "name",
		},
		{
			name:  "missing latitude",
			input: CameraInput{Name: "Cam", Longitude: ptr(0.0), Zone: "z", Pole: ptr(1)},
			path:  "latitude",
		},
		{
			name:  "latitude out of range",
			input: CameraInput{Name: "Cam", Latitude: ptr(91.0), Longitude: ptr(0.0), Zone: "z", Pole: ptr(1)},
			path:  "latitude",
		},
		{
			name:  "longitude out of range",
			input: CameraInput{Name: "Cam", Latitude: ptr(0.0), Longitude: ptr(-180.5), Zone: "z", Pole: ptr(1)},
			path:  "longitude",
		},
		{
			name:  "missing zone",
			input: CameraInput{Name: "Cam", Latitude: ptr(0.0), Longitude: ptr(0.0), Pole: ptr(1)},
			path:  "zone",
		},
		{
			name:  "negative pole",
			input: CameraInput{Name: "Cam", Latitude: ptr(0.0), Longitude: ptr(0.0), Zone: "z", Pole: ptr(-1)},
			path:  "pole",
		},
		{
			name:  "missing pole",
			input: CameraInput{Name: "Cam", Latitude: ptr(0.0), Longitude: ptr(0.0), Zone: "z"},
			path:  "pole",
		},
		{
			name:  "bad mac",
			input: CameraInput{Name: "Cam", Latitude: ptr(0.0), Longitude: ptr(0.0), Zone: "z", Pole: ptr(1), MacID: "00:1B:44:11:3A"},
			path:  "mac_id",
		},
		{
			name:  "bad ip",
			input: CameraInput{Name: "Cam", Latitude: ptr(0.0), Longitude: ptr(0.0), Zone: "z", Pole: ptr(1), IP: "256.1.1.1"},
			path:  "ip",
		},
		{
			name:  "bad status",
			input: CameraInput{Name: "Cam", Latitude: ptr(0.0), Longitude: ptr(0.0), Zone: "z", Pole: ptr(1), Status: "broken"},
			path:  "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ValidateCameraInput(&tt.input)
			require.NotEmpty(t, issues)
			assert.Contains(t, issuePaths(issues), tt.path)
		})
	}
}

func TestValidateBulkCreate(t *testing.T) {
	valid := func(name, mac, ip string, pole int) CameraInput {
		return CameraInput{Name: name, Latitude: ptr(1.0), Longitude: ptr(1.0), Zone: "z", Pole: ptr(pole), MacID: mac, IP: ip}
	}

	t.Run("valid batch", func(t *testing.T) {
		issues := ValidateBulkCreate([]CameraInput{
			valid("Cam A", "00:00:00:00:00:01", "10.0.0.1", 1),
			valid("Cam B", "", "", 2),
		})
		assert.Empty(t, issues)
	})

	t.Run("empty batch", func(t *testing.T) {
		issues := ValidateBulkCreate(nil)
		assert.Equal(t, []string{"At least one camera is required."}, issueMessages(issues))
	})

	t.Run("oversized batch", func(t *testing.T) {
		inputs := make([]CameraInput, MaxBatchSize+1)
		issues := ValidateBulkCreate(inputs)
		require.Len(t, issues, 1)
		assert.Equal(t, "body", issues[0].Path)
	})

	t.Run("record paths are indexed", func(t *testing.T) {
		bad := valid("Cam B", "", "300.0.0.1", 2)
		issues := ValidateBulkCreate([]CameraInput{valid("Cam A", "", "", 1), bad})
		assert.Equal(t, []string{"1.ip"}, issuePaths(issues))
	})

	t.Run("duplicates inside the batch", func(t *testing.T) {
		issues := ValidateBulkCreate([]CameraInput{
			valid("Cam A", "00:00:00:00:00:01", "10.0.0.1", 1),
			valid("Cam A", "00:00:00:00:00:01", "10.0.0.1", 2),
		})
		assert.ElementsMatch(t, []string{
			"Duplicate camera names are not allowed.",
			"Duplicate MAC addresses are not allowed.",
			"Duplicate IP addresses are not allowed.",
		}, issueMessages(issues))
	})

	t.Run("mac duplicates ignore case", func(t *testing.T) {
		issues := ValidateBulkCreate([]CameraInput{
			valid("Cam A", "aa:bb:cc:dd:ee:ff", "", 1),
			valid("Cam B", "AA:BB:CC:DD:EE:FF", "", 2),
		})
		assert.Equal(t, []string{"Duplicate MAC addresses are not allowed."}, issueMessages(issues))
	})

	t.Run("mac duplicates ignore separator", func(t *testing.T) {
		issues := ValidateBulkCreate([]CameraInput{
			valid("Cam A", "aa-bb-cc-dd-ee-ff", "", 1),
			valid("Cam B", "AA:BB:CC:DD:EE:FF", "", 2),
		})
		assert.Equal(t, []string{"Duplicate MAC addresses are not allowed."}, issueMessages(issues))
	})
}

func TestMacKey(t *testing.T) {
	assert.Equal(t, "00:1B:44:11:3A:B7", macKey("00-1b-44-11-3a-b7"))
	assert.Equal(t, "00:1B:44:11:3A:B7", macKey("00:1B:44:11:3a:b7"))
}

func TestValidateBulkStatus(t *testing.T) {
	assert.Empty(t, ValidateBulkStatus([]StatusInput{
		{IP: "10.0.0.1", Status: ptr(true)},
		{IP: " 10.0.0.2 ", Status: ptr(false)},
	}))

	issues := ValidateBulkStatus([]StatusInput{
		{IP: "10.0.0.1", Status: ptr(true)},
		{IP: "10.0.0.1"},
		{IP: "not-an-ip", Status: ptr(true)},
	})
	assert.ElementsMatch(t, []string{"1.status", "2.ip", "body"}, issuePaths(issues))

	assert.NotEmpty(t, ValidateBulkStatus([]StatusInput{}))
}

func TestValidateCameraUpdate(t *testing.T) {
	assert.Equal(t, []string{"body"}, issuePaths(ValidateCameraUpdate(&CameraUpdate{})))
	assert.Empty(t, ValidateCameraUpdate(&CameraUpdate{Notes: ptr("moved"), IP: ptr("")}))
	assert.Equal(t, []string{"status"}, issuePaths(ValidateCameraUpdate(&CameraUpdate{Status: ptr("")})))
	assert.Equal(t, []string{"pole"}, issuePaths(ValidateCameraUpdate(&CameraUpdate{Pole: ptr(-3)})))
}

func TestValidateZoneInput(t *testing.T) {
	assert.Empty(t, ValidateZoneInput(&ZoneInput{Name: "Library"}))
	assert.Equal(t, []string{"name"}, issuePaths(ValidateZoneInput(&ZoneInput{Name: " "})))
	assert.Equal(t, []string{"body"}, issuePaths(ValidateZoneUpdate(&ZoneUpdate{})))
}
