package kafka

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// ReportRequest asks the reporter to send a user the report of a period.
type ReportRequest struct {
	UserID int64  `json:"user_id"`
	Period string `json:"period"`
}

func (r ReportRequest) key() []byte {
	return []byte(strconv.FormatInt(r.UserID, 10))
}

func encodeRequest(req ReportRequest) ([]byte, error) {
	raw, err := json.Marshal(req)
	return raw, errors.Wrap(err, "encode report request")
}

func decodeRequest(raw []byte) (ReportRequest, error) {
	var req ReportRequest
	err := json.Unmarshal(raw, &req)
	return req, errors.Wrap(err, "decode report request")
}
