// Package ingest reads exported SMS archives so the CLI can batch-scan
// a whole inbox. The supported format is the widely used "SMS Backup &
// Restore" XML export: an <smses> root with one <sms> element per
// message.
package ingest

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

// Message is one SMS pulled from a backup: exactly the triple the
// parsing engine consumes.
type Message struct {
	Sender    string
	Body      string
	Timestamp int64 // epoch millis
}

type xmlSMS struct {
	Address string `xml:"address,attr"`
	Body    string `xml:"body,attr"`
	Date    string `xml:"date,attr"`
	Type    string `xml:"type,attr"` // 1 = received, 2 = sent
}

type xmlBackup struct {
	XMLName xml.Name `xml:"smses"`
	SMS     []xmlSMS `xml:"sms"`
}

// ReadBackup parses an SMS backup XML file into messages. Only received
// messages are returned; outgoing SMS cannot be bank notifications.
// Messages with an unparseable date keep a zero timestamp rather than
// being dropped: the engine does not depend on the timestamp.
func ReadBackup(path string) ([]Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}
	return parseBackup(data)
}

func parseBackup(data []byte) ([]Message, error) {
	var backup xmlBackup
	if err := xml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("parsing backup XML: %w", err)
	}
	msgs := make([]Message, 0, len(backup.SMS))
	for _, s := range backup.SMS {
		if s.Type == "2" || s.Body == "" || s.Address == "" {
			continue
		}
		ts, _ := strconv.ParseInt(s.Date, 10, 64)
		msgs = append(msgs, Message{
			Sender:    s.Address,
			Body:      s.Body,
			Timestamp: ts,
		})
	}
	return msgs, nil
}
