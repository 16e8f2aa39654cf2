package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type httpCollectionAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPCollectionAdapter constructs a resty-backed [CollectionAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL, applies the
// optional request timeout and installs the fixed headers.
//
// Returns an error wrapping [ErrInvalidBaseURL] if the address is empty or
// cannot be parsed.
func NewHTTPCollectionAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (CollectionAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetHeaders(map[string]string{
		"Content-Type":      "application/json",
		"Accept":            "application/json",
		app.AccessKeyHeader: appCfg.AccessKey,
		app.BypassHeader:    app.BypassHeaderValue,
	})

	return &httpCollectionAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [CollectionAdapter].
func (h *httpCollectionAdapter) Send(ctx context.Context, method, path string, body any) (models.Response, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(app.TraceIDHeader, traceID)
	if body != nil {
		req.SetBody(body)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	log := h.logger.With().
		Str("func", "*httpCollectionAdapter.Send").
		Str("method", method).
		Str("path", path).
		Str("trace_id", traceID).
		Logger()

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).Msg("request produced no response")
		return models.Response{}, mapTransportError(method, path, err)
	}

	out, err := decodeResponse(resp)
	if err != nil {
		log.Err(err).Int("status", out.Status).Msg("undecodable response body")
		return out, err
	}

	event := log.Debug()
	if !out.IsSuccess() {
		event = log.Warn()
	}
	event.Int("status", out.Status).Dur("took", resp.Time()).Msg("response received")

	return out, nil
}
