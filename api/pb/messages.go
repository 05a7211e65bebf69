// Package pb holds the wire types for the engine API and event stream.
//
// The structs are hand-maintained against engine.proto rather than
// generated: they implement the legacy proto.Message interface and the
// protobuf runtime derives their descriptors from the struct tags via
// protoadapt, which keeps generated code out of the tree while staying
// wire-compatible with any protoc-built consumer.
package pb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// Event is the single envelope published to the outbox and Kafka.
// Type is "order_added" or "trade"; unused fields stay zero.
type Event struct {
	V       uint32 `protobuf:"varint,1,opt,name=v,proto3"`
	Type    string `protobuf:"bytes,2,opt,name=type,proto3"`
	Seq     uint64 `protobuf:"varint,3,opt,name=seq,proto3"`
	OrderId uint64 `protobuf:"varint,4,opt,name=order_id,json=orderId,proto3"`
	BuyId   uint64 `protobuf:"varint,5,opt,name=buy_id,json=buyId,proto3"`
	SellId  uint64 `protobuf:"varint,6,opt,name=sell_id,json=sellId,proto3"`
	Side    string `protobuf:"bytes,7,opt,name=side,proto3"`
	Symbol  string `protobuf:"bytes,8,opt,name=symbol,proto3"`
	Qty     int64  `protobuf:"varint,9,opt,name=qty,proto3"`
	Price   int64  `protobuf:"varint,10,opt,name=price,proto3"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return fmt.Sprintf("%+v", *m) }
func (*Event) ProtoMessage()    {}

type AddOrderRequest struct {
	Side   string `protobuf:"bytes,1,opt,name=side,proto3"`
	Symbol string `protobuf:"bytes,2,opt,name=symbol,proto3"`
	Qty    int64  `protobuf:"varint,3,opt,name=qty,proto3"`
	Price  int64  `protobuf:"varint,4,opt,name=price,proto3"`
}

func (m *AddOrderRequest) Reset()         { *m = AddOrderRequest{} }
func (m *AddOrderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AddOrderRequest) ProtoMessage()    {}

type AddOrderResponse struct {
	Status  string `protobuf:"bytes,1,opt,name=status,proto3"`
	OrderId uint64 `protobuf:"varint,2,opt,name=order_id,json=orderId,proto3"`
	Seq     uint64 `protobuf:"varint,3,opt,name=seq,proto3"`
	Reason  string `protobuf:"bytes,4,opt,name=reason,proto3"`
}

func (m *AddOrderResponse) Reset()         { *m = AddOrderResponse{} }
func (m *AddOrderResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AddOrderResponse) ProtoMessage()    {}

type MatchRequest struct{}

func (m *MatchRequest) Reset()         { *m = MatchRequest{} }
func (m *MatchRequest) String() string { return "MatchRequest{}" }
func (*MatchRequest) ProtoMessage()    {}

type TradeMsg struct {
	BuyId  uint64 `protobuf:"varint,1,opt,name=buy_id,json=buyId,proto3"`
	SellId uint64 `protobuf:"varint,2,opt,name=sell_id,json=sellId,proto3"`
	Symbol string `protobuf:"bytes,3,opt,name=symbol,proto3"`
	Qty    int64  `protobuf:"varint,4,opt,name=qty,proto3"`
	Price  int64  `protobuf:"varint,5,opt,name=price,proto3"`
}

func (m *TradeMsg) Reset()         { *m = TradeMsg{} }
func (m *TradeMsg) String() string { return fmt.Sprintf("%+v", *m) }
func (*TradeMsg) ProtoMessage()    {}

type MatchResponse struct {
	Trades []*TradeMsg `protobuf:"bytes,1,rep,name=trades,proto3"`
}

func (m *MatchResponse) Reset()         { *m = MatchResponse{} }
func (m *MatchResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MatchResponse) ProtoMessage()    {}

type BookRequest struct{}

func (m *BookRequest) Reset()         { *m = BookRequest{} }
func (m *BookRequest) String() string { return "BookRequest{}" }
func (*BookRequest) ProtoMessage()    {}

type OrderEntry struct {
	Id        uint64 `protobuf:"varint,1,opt,name=id,proto3"`
	Side      string `protobuf:"bytes,2,opt,name=side,proto3"`
	Symbol    string `protobuf:"bytes,3,opt,name=symbol,proto3"`
	Price     int64  `protobuf:"varint,4,opt,name=price,proto3"`
	Remaining int64  `protobuf:"varint,5,opt,name=remaining,proto3"`
	Seq       uint64 `protobuf:"varint,6,opt,name=seq,proto3"`
}

func (m *OrderEntry) Reset()         { *m = OrderEntry{} }
func (m *OrderEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*OrderEntry) ProtoMessage()    {}

type BookResponse struct {
	Orders []*OrderEntry `protobuf:"bytes,1,rep,name=orders,proto3"`
}

func (m *BookResponse) Reset()         { *m = BookResponse{} }
func (m *BookResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*BookResponse) ProtoMessage()    {}

// Marshal encodes a wire type through the protobuf runtime.
func Marshal(m protoadapt.MessageV1) ([]byte, error) {
	return proto.Marshal(protoadapt.MessageV2Of(m))
}

// Unmarshal decodes wire bytes into a wire type.
func Unmarshal(data []byte, m protoadapt.MessageV1) error {
	return proto.Unmarshal(data, protoadapt.MessageV2Of(m))
}
