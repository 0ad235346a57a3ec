package validator

import (
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/Oudwins/zog"
)

var CredentialsShape = zog.Shape{
	"Email":    zog.String().Email().Required(),
	"Password": zog.String().Min(6).Required(),
}

var RegisterShape = zog.Shape{
	"Name": zog.String().Min(2).Required(),
}

var ChatShape = zog.Shape{
	"Message": zog.String().Min(1).Required(),
}

// SynastryPairTest rejects a comparison of a person against themselves.
func SynastryPairTest(dataPtr any, ctx zog.Ctx) bool {
	req, ok := dataPtr.(*model.SynastryRequest)
	if !ok {
		return true
	}

	if req.Person1 == req.Person2 {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "person2",
			Message: "İki kişinin doğum bilgileri aynı olamaz",
		})
		return false
	}
	return true
}
