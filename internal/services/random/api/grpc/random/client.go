package random

import (
	"context"
	"encoding/binary"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls RandomService over a client connection.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// SetSeed switches the remote generator's mode.
func (c *Client) SetSeed(ctx context.Context, seed uint32, opts ...grpc.CallOption) error {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, fullMethod("SetSeed"), wrapperspb.UInt32(seed), out, opts...); err != nil {
		return fmt.Errorf("set seed: %w", err)
	}
	return nil
}

// Next draws one value.
func (c *Client) Next(ctx context.Context, opts ...grpc.CallOption) (uint32, error) {
	out := new(wrapperspb.UInt32Value)
	if err := c.cc.Invoke(ctx, fullMethod("Next"), &emptypb.Empty{}, out, opts...); err != nil {
		return 0, fmt.Errorf("next: %w", err)
	}
	return out.GetValue(), nil
}

// Range draws one value bounded by n.
func (c *Client) Range(ctx context.Context, n int32, opts ...grpc.CallOption) (int32, error) {
	out := new(wrapperspb.Int32Value)
	if err := c.cc.Invoke(ctx, fullMethod("Range"), wrapperspb.Int32(n), out, opts...); err != nil {
		return 0, fmt.Errorf("range: %w", err)
	}
	return out.GetValue(), nil
}

// ReadWords draws count consecutive values.
func (c *Client) ReadWords(ctx context.Context, count uint32, opts ...grpc.CallOption) ([]uint32, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, fullMethod("ReadWords"), wrapperspb.UInt32(count), out, opts...); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	raw := out.GetValue()
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("read words: payload length %d is not a multiple of 4", len(raw))
	}
	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return words, nil
}
