package catalog

import (
	"github.com/bytedance/sonic"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// ListingResult is the normalized listing response. The upstream returns
// either {results, count} or a bare array, both are tolerated.
type ListingResult struct {
	Products []types.Product `json:"results"`
	Count    int             `json:"count"`
}

func decodeListing(data []byte) (*ListingResult, error) {
	var enveloped ListingResult
	if err := sonic.Unmarshal(data, &enveloped); err == nil {
		if enveloped.Products == nil {
			enveloped.Products = []types.Product{}
		}
		return &enveloped, nil
	}
	var bare []types.Product
	if err := sonic.Unmarshal(data, &bare); err != nil {
		return nil, err
	}
	return &ListingResult{Products: bare, Count: len(bare)}, nil
}

type categoryEnvelope struct {
	Results []types.Category `json:"results"`
}

func decodeCategories(data []byte) ([]types.Category, error) {
	var enveloped categoryEnvelope
	if err := sonic.Unmarshal(data, &enveloped); err == nil && enveloped.Results != nil {
		return enveloped.Results, nil
	}
	var bare []types.Category
	if err := sonic.Unmarshal(data, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}

type brandEnvelope struct {
	Results []types.Brand `json:"results"`
}

func decodeBrands(data []byte) ([]types.Brand, error) {
	var enveloped brandEnvelope
	if err := sonic.Unmarshal(data, &enveloped); err == nil && enveloped.Results != nil {
		return enveloped.Results, nil
	}
	var bare []types.Brand
	if err := sonic.Unmarshal(data, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}
