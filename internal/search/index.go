package search

import "time"

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedIndex is the result set served before a real search backend exists.
func SeedIndex() []Hit {
	return []Hit{
		{
			ID:             "1",
			Title:          "นโยบายการลาพักร้อนประจำปี 2024",
			Content:        "นโยบายการลาพักร้อนสำหรับพนักงานทุกระดับ รวมถึงเงื่อนไขและขั้นตอนการขออนุมัติ",
			Category:       "hr",
			FileType:       "pdf",
			LastUpdated:    day("2024-01-15"),
			RelevanceScore: 0.95,
			SearchType:     "semantic",
			Highlights:     []string{"นโยบายการลา", "พักร้อน", "พนักงาน"},
		},
		{
			ID:             "2",
			Title:          "คู่มือการใช้งานระบบสินเชื่อ V2.1",
			Content:        "คู่มือการใช้งานระบบสินเชื่อใหม่ รวมถึงขั้นตอนการอนุมัติและการตรวจสอบเครดิต",
			Category:       "credit",
			FileType:       "pdf",
			LastUpdated:    day("2024-01-10"),
			RelevanceScore: 0.88,
			SearchType:     "vector",
			Highlights:     []string{"ระบบสินเชื่อ", "อนุมัติ", "เครดิต"},
		},
		{
			ID:             "3",
			Title:          "วิธีการแก้ไขปัญหาระบบ IT เบื้องต้น",
			Content:        "คู่มือการแก้ไขปัญหาระบบคอมพิวเตอร์และเครือข่ายเบื้องต้นสำหรับพนักงาน",
			Category:       "it",
			FileType:       "document",
			LastUpdated:    day("2024-01-08"),
			RelevanceScore: 0.82,
			SearchType:     "hybrid",
			Highlights:     []string{"แก้ไขปัญหา", "ระบบ IT", "คอมพิวเตอร์"},
		},
	}
}
