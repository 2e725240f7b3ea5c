package mq

import (
	"shelf_life/inventory/fbs/AgingMessages"
	"shelf_life/inventory/internal/store"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/juju/loggo"
	zmq "github.com/pebbe/zmq4"
)

var logger = loggo.GetLogger("inventory.mq")

type Publisher struct {
	socket *zmq.Socket
}

// NewPublisher binds a PUB socket that broadcasts nightly aging reports.
func NewPublisher(port string) (*Publisher, error) {
	sock, err := zmq.NewSocket(zmq.Type(zmq.PUB))
	if err != nil {
		return nil, err
	}
	addr := "tcp://*:" + port
	if err := sock.Bind(addr); err != nil {
		sock.Close()
		return nil, err
	}
	logger.Debugf("publisher bound addr=%s", addr)
	return &Publisher{socket: sock}, nil
}

// PublishDayReport serializes and emits the stock after an aging pass.
func (p *Publisher) PublishDayReport(report store.DayReport) error {
	payload := EncodeDayReport(report)
	_, err := p.socket.SendBytes(payload, 0)
	return err
}

// Close releases the underlying socket.
func (p *Publisher) Close() {
	p.socket.Close()
}

// EncodeDayReport builds the AgingMessages.DayReport flatbuffer.
func EncodeDayReport(report store.DayReport) []byte {
	builder := flatbuffers.NewBuilder(1024)

	var itemOffsets []flatbuffers.UOffsetT
	for _, item := range report.Items {
		sku := builder.CreateString(item.SKU)
		name := builder.CreateString(item.Name)
		category := builder.CreateString(item.Category.String())

		AgingMessages.ItemStateStart(builder)
		AgingMessages.ItemStateAddSku(builder, sku)
		AgingMessages.ItemStateAddName(builder, name)
		AgingMessages.ItemStateAddCategory(builder, category)
		AgingMessages.ItemStateAddSellIn(builder, int32(item.SellIn))
		AgingMessages.ItemStateAddQuality(builder, int32(item.Quality))
		itemOffsets = append(itemOffsets, AgingMessages.ItemStateEnd(builder))
	}

	AgingMessages.DayReportStartItemsVector(builder, len(itemOffsets))
	for i := len(itemOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(itemOffsets[i])
	}
	itemsVec := builder.EndVector(len(itemOffsets))

	runID := builder.CreateString(report.RunID)
	date := builder.CreateString(report.Date)
	AgingMessages.DayReportStart(builder)
	AgingMessages.DayReportAddRunId(builder, runID)
	AgingMessages.DayReportAddDate(builder, date)
	AgingMessages.DayReportAddAgedAt(builder, report.AgedAt.Unix())
	AgingMessages.DayReportAddItems(builder, itemsVec)
	msg := AgingMessages.DayReportEnd(builder)

	builder.Finish(msg)
	return builder.FinishedBytes()
}
