package service

import (
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/xuri/excelize/v2"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

const exportSheet = "Sheet1"

// ExportPrice 导出当前报价与日线历史为 xlsx
func (s *MetalsService) ExportPrice(ctx http.Context) error {
	r := s.price.Get(ctx, ctx.Vars().Get("symbol"))
	if !r.Available() {
		return ctx.JSON(nethttp.StatusNotFound, v1.ErrorReply{Error: r.Message})
	}

	f, err := buildWorkbook(r.Quote)
	if err != nil {
		s.log.Errorf("export %s: %v", r.Symbol, err)
		return ctx.JSON(nethttp.StatusInternalServerError, v1.ErrorReply{Error: err.Error()})
	}
	defer f.Close()

	name := fmt.Sprintf("%s_%s.xlsx", r.Symbol, time.Now().Format("20060102"))
	w := ctx.Response()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(nethttp.StatusOK)
	if err := f.Write(w); err != nil {
		s.log.Errorf("write workbook %s: %v", name, err)
	}
	return nil
}

func buildWorkbook(q *domain.Quote) (*excelize.File, error) {
	f := excelize.NewFile()
	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		f.Close()
		return nil, err
	}

	rows := [][]interface{}{
		{"Symbol", q.Symbol, "Ticker", q.Ticker, "Source", q.Source},
		{"Price", q.Price, "Change", q.Change, "Change %", q.ChangePct},
		{"Currency", q.Currency, "Date", q.Date},
		{},
		{"Date", "Open", "High", "Low", "Close", "Volume"},
	}
	for _, b := range q.History {
		rows = append(rows, []interface{}{b.Date, b.Open, b.High, b.Low, b.Close, b.Volume})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
