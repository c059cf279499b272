// Package random implements the RandomService gRPC handlers and client.
package random

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/glulxrand/internal/platform/errors"
	"github.com/louisbranch/glulxrand/internal/platform/otel"
	rng "github.com/louisbranch/glulxrand/internal/random"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// MaxReadWords caps a single ReadWords batch.
const MaxReadWords = 4096

// Service exposes random.v1 gRPC operations over one Generator.
type Service struct {
	gen    *rng.Generator
	tracer trace.Tracer
}

var _ RandomServiceServer = (*Service)(nil)

// NewService creates a random service backed by gen.
func NewService(gen *rng.Generator) *Service {
	return &Service{
		gen:    gen,
		tracer: otel.Tracer("github.com/louisbranch/glulxrand/internal/services/random"),
	}
}

// SetSeed switches the generator mode; zero selects native randomness.
func (s *Service) SetSeed(ctx context.Context, in *wrapperspb.UInt32Value) (*emptypb.Empty, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "set seed request is required")
	}
	if s == nil || s.gen == nil {
		return nil, status.Error(codes.Internal, "generator is not configured")
	}
	mode := s.gen.SetSeed(in.GetValue())
	log.Printf("random mode set to %s (seed %d)", mode, in.GetValue())
	return &emptypb.Empty{}, nil
}

// Next returns the next 32-bit value.
func (s *Service) Next(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt32Value, error) {
	if s == nil || s.gen == nil {
		return nil, status.Error(codes.Internal, "generator is not configured")
	}
	return wrapperspb.UInt32(s.gen.Uint32()), nil
}

// Range returns a value bounded by the request per the VM random opcode.
func (s *Service) Range(ctx context.Context, in *wrapperspb.Int32Value) (*wrapperspb.Int32Value, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "range request is required")
	}
	if s == nil || s.gen == nil {
		return nil, status.Error(codes.Internal, "generator is not configured")
	}
	return wrapperspb.Int32(s.gen.Range(in.GetValue())), nil
}

// ReadWords returns count consecutive values packed little-endian.
func (s *Service) ReadWords(ctx context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.BytesValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "read words request is required")
	}
	if s == nil || s.gen == nil {
		return nil, status.Error(codes.Internal, "generator is not configured")
	}

	count := in.GetValue()
	if count == 0 || count > MaxReadWords {
		return nil, apperrors.WithMetadata(
			apperrors.CodeRandomInvalidWordCount,
			fmt.Sprintf("word count %d out of range", count),
			map[string]string{"Max": strconv.Itoa(MaxReadWords)},
		).LocalizedStatus(localeFromContext(ctx))
	}

	_, span := s.tracer.Start(ctx, "random.ReadWords", trace.WithAttributes(
		attribute.Int("random.word_count", int(count)),
	))
	defer span.End()

	words := make([]uint32, count)
	mode := s.gen.Fill(words)
	span.SetAttributes(attribute.String("random.mode", mode.String()))
	buf := make([]byte, 0, 4*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return wrapperspb.Bytes(buf), nil
}

// localeFromContext reads the caller's accept-language metadata.
func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("accept-language")
	if len(values) == 0 {
		return ""
	}
	first, _, _ := strings.Cut(values[0], ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}
