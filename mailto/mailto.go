// Package mailto builds mailto: URIs that hand form submissions over to the
// visitor's mail client.
package mailto

import (
	"fmt"
	"net/url"
	"strings"
)

// Message is a mail prepared for the mail client.
type Message struct {
	To      string
	Subject string
	Body    string
}

// URI formats m as a mailto: URI. Subject and body are percent-encoded like
// JavaScript's encodeURIComponent, so spaces become %20.
func (m Message) URI() string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", m.To, Encode(m.Subject), Encode(m.Body))
}

// componentUnescapes undoes the escapes QueryEscape applies to characters
// encodeURIComponent leaves alone.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Encode percent-encodes s for use in a mailto: header value.
func Encode(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// Inquiry is a project inquiry sent from the contact form.
type Inquiry struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required"`
	Message string `form:"message" json:"message" binding:"required"`
}

func (i Inquiry) Compose(to string) Message {
	return Message{
		To:      to,
		Subject: "Project Inquiry",
		Body: fmt.Sprintf("New project inquiry\nName: %s\nEmail: %s\nMessage: %s",
			i.Name, i.Email, i.Message),
	}
}

// BetaRequest asks for an invite to the next closed beta cohort.
type BetaRequest struct {
	Name  string `form:"name" json:"name" binding:"required"`
	Email string `form:"email" json:"email" binding:"required"`
}

func (b BetaRequest) Compose(to, product string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("%s Beta Request", product),
		Body: fmt.Sprintf("Please add me to the %s beta.\nName: %s\nEmail: %s",
			product, b.Name, b.Email),
	}
}
