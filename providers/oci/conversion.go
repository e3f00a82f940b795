package oci

import (
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
)

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeValue(t *common.SDKTime) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}
