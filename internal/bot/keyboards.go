package bot

import (
	"strconv"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
)

const displayDate = "02.01.2006"

type Button struct {
	Text string
	Data string
}

// Reply is one outgoing message. Inline buttons are attached to the message;
// Menu and AskContact switch the reply keyboard.
type Reply struct {
	Text       string
	Markdown   bool
	Inline     [][]Button
	Menu       bool
	AskContact bool
}

func abortRow() []Button {
	return []Button{{Text: btnAbort, Data: cbAbort}}
}

// dateKeyboard offers the next days starting from today in venue time, two
// per row.
func dateKeyboard(hours domain.OperatingHours, now time.Time, days int) [][]Button {
	today := hours.Local(now)
	var rows [][]Button
	var row []Button
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		row = append(row, Button{
			Text: day.Format(displayDate),
			Data: cbDate + day.Format(domain.DateLayout),
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return append(rows, abortRow())
}

func partyKeyboard(maxParty int) [][]Button {
	var rows [][]Button
	var row []Button
	for n := 1; n <= maxParty; n++ {
		row = append(row, Button{Text: strconv.Itoa(n), Data: cbParty + strconv.Itoa(n)})
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return append(rows, abortRow())
}

func timeKeyboard(hours domain.OperatingHours, slots []time.Time) [][]Button {
	var rows [][]Button
	var row []Button
	for _, ts := range slots {
		tod := hours.LocalTimeOfDay(ts)
		row = append(row, Button{Text: tod, Data: cbTime + tod})
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return append(rows, abortRow())
}
