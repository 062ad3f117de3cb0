package chat

import "strings"

var followUpRules = []struct {
	words     []string
	questions []string
}{
	{
		words:     []string{"ลา", "พักร้อน"},
		questions: []string{"วิธีการยื่นคำขอลาพักร้อนออนไลน์", "นโยบายการลาป่วยเป็นอย่างไร", "สามารถสะสมวันลาได้กี่วัน"},
	},
	{
		words:     []string{"สินเชื่อ", "อนุมัติ"},
		questions: []string{"เอกสารที่ต้องใช้ในการขอสินเชื่อ", "อัตราดอกเบี้ยสินเชื่อปัจจุบัน", "ระยะเวลาการผ่อนชำระสูงสุด"},
	},
	{
		words:     []string{"it", "ระบบ"},
		questions: []string{"วิธีการรีเซ็ตรหัสผ่านระบบ", "การขอสิทธิ์เข้าใช้ระบบใหม่", "ช่องทางติดต่อ IT Support"},
	},
	{
		words:     []string{"วันหยุด"},
		questions: []string{"วันหยุดชดเชยในปีนี้", "นโยบายการทำงานในวันหยุด", "การขอหยุดงานเพิ่มเติม"},
	},
}

var genericFollowUps = []string{"มีข้อมูลเพิ่มเติมเกี่ยวกับเรื่องนี้ไหม", "ขั้นตอนถัดไปคืออะไร", "มีเอกสารอ้างอิงไหม"}

const maxFollowUps = 3

// FollowUps picks up to three follow-up questions from the answer text.
func FollowUps(answer string) []string {
	text := strings.ToLower(answer)

	for _, r := range followUpRules {
		for _, w := range r.words {
			if strings.Contains(text, w) {
				return first(r.questions, maxFollowUps)
			}
		}
	}
	return first(genericFollowUps, maxFollowUps)
}

// SuggestedQuestions are offered to users who have not asked anything yet.
func SuggestedQuestions() []string {
	return []string{
		"นโยบายการลาพักร้อนเป็นอย่างไร",
		"ขั้นตอนการขอสินเชื่อบ้าน",
		"วันหยุดประจำปี 2568-2569",
		"วิธีแก้ไขปัญหาระบบ IT",
		"การขอใบรับรองเงินเดือน",
		"นโยบายการทำงานจากที่บ้าน",
		"ขั้นตอนการลาออกจากงาน",
		"สวัสดิการพนักงานมีอะไรบ้าง",
	}
}

func first(qs []string, n int) []string {
	if len(qs) > n {
		qs = qs[:n]
	}
	return append([]string(nil), qs...)
}
