package util

import (
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/mapstructure"
)

// DecodeBody maps a loosely typed JSON body onto a concrete DTO. Used where
// an endpoint accepts more than one payload shape.
func DecodeBody(body map[string]any, target any) error {
	return mapstructure.Decode(body, target)
}

// FriendToPerson adapts a saved friend into one side of a synastry payload.
func FriendToPerson(f model.Friend) (model.SynastryPerson, error) {
	var p model.SynastryPerson
	if err := copier.Copy(&p, &f); err != nil {
		return model.SynastryPerson{}, err
	}
	p.Location = f.BirthPlace
	return p, nil
}

// ProfileToPerson adapts the stored birth profile into one side of a synastry
// payload.
func ProfileToPerson(pr model.BirthProfile) (model.SynastryPerson, error) {
	var p model.SynastryPerson
	if err := copier.Copy(&p, &pr); err != nil {
		return model.SynastryPerson{}, err
	}
	p.Location = pr.BirthPlace
	return p, nil
}
