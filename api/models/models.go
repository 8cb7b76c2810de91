// Package models tracks all api models for request and responses
package models

import "github.com/aouyang1/photogallery/exifmeta"

type ImageListResponse struct {
	Images []string `json:"images"`
	Total  int      `json:"total"`
}

type MetadataResponse struct {
	Filename string          `json:"filename"`
	Status   string          `json:"status"`
	Metadata exifmeta.Record `json:"metadata"`
	Prev     string          `json:"prev"`
	Next     string          `json:"next"`
	Position int             `json:"position"`
	Total    int             `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
