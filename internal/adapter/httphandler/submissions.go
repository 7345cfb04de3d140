package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

// POST v1/inquiries JSON (201 Created, 400 Bad request, 422 Unprocessable entity)
// POST v1/contact JSON (201 Created, 400 Bad request)
// POST v1/members JSON (201 Created, 400 Bad request)

const (
	inquiryAck    = "Inquiry sent! We will contact you shortly with a quote."
	contactAck    = "Message sent! We will get back to you soon."
	membershipAck = "Application received! Our team will review it shortly."
)

type SubmissionsHandler struct {
	sender port.SubmissionSender
}

func RegisterSubmissions(mux *http.ServeMux, sender port.SubmissionSender) {
	h := SubmissionsHandler{sender}
	mux.HandleFunc("POST /api/v1/inquiries", h.PostInquiry)
	mux.HandleFunc("POST /api/v1/contact", h.PostContact)
	mux.HandleFunc("POST /api/v1/members", h.PostMembership)
}

func (h SubmissionsHandler) PostInquiry(w http.ResponseWriter, r *http.Request) {
	const op = "SubmissionsHandler.PostInquiry"
	log := slog.With("op", op)

	var req InquiryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		log.Warn("invalid request", "err", err)
		return
	}

	sub, err := h.sender.SubmitInquiry(
		r.Context(), VisitorID(r.Context()), req.toDomain(),
	)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			writeError(w, http.StatusUnprocessableEntity, "inquiry list is empty")
			return
		}
		writeError(w, http.StatusServiceUnavailable, "failed to send inquiry")
		log.Error("failed to submit inquiry", "err", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionResponse(sub, inquiryAck))
}

func (h SubmissionsHandler) PostContact(w http.ResponseWriter, r *http.Request) {
	const op = "SubmissionsHandler.PostContact"
	log := slog.With("op", op)

	var req ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		log.Warn("invalid request", "err", err)
		return
	}

	sub, err := h.sender.SendContactMessage(
		r.Context(), VisitorID(r.Context()), req.toDomain(),
	)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "failed to send message")
		log.Error("failed to send contact message", "err", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionResponse(sub, contactAck))
}

func (h SubmissionsHandler) PostMembership(w http.ResponseWriter, r *http.Request) {
	const op = "SubmissionsHandler.PostMembership"
	log := slog.With("op", op)

	var req MembershipRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		log.Warn("invalid request", "err", err)
		return
	}

	sub, err := h.sender.ApplyMembership(
		r.Context(), VisitorID(r.Context()), req.toDomain(),
	)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "failed to send application")
		log.Error("failed to apply membership", "err", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionResponse(sub, membershipAck))
}

func toSubmissionResponse(s domain.Submission, msg string) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		Kind:      string(s.Kind),
		CreatedAt: s.CreatedAt,
		Items:     toCartItems(s.Items),
		Message:   msg,
	}
}
