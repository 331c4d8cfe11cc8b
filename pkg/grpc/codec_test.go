package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"campuscctv.xyz/inventory-service/pkg/cctv"
)

func TestJSONCodec(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())

	online := true
	req := &BulkUpdateStatusRequest{Updates: []cctv.StatusInput{
		{IP: "10.0.0.1", Status: &online},
		{IP: "10.0.0.2"},
	}}
	data, err := codec.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"updates":[{"ip":"10.0.0.1","status":true},{"ip":"10.0.0.2","status":null}]}`, string(data))

	var resp ListCameraIPsResponse
	require.Error(t, codec.Unmarshal([]byte(`{"ips": 42}`), &resp))
}
