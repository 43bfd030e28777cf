package types_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pacforge/pacforge/pkg/domain/types"
)

func TestSecretTypesNeverPrint(t *testing.T) {
	gt.V(t, types.Password("hunter2").String()).Equal("***********")
	gt.V(t, types.TokenSecret("sha1-abcdef").String()).Equal("***********")
	gt.V(t, fmt.Sprintf("%v", types.Password("hunter2"))).Equal("***********")
	gt.V(t, fmt.Sprintf("creds: %s", types.TokenSecret("sha1-abcdef"))).Equal("creds: ***********")
}
