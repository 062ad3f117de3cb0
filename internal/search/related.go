package search

import "strings"

var relatedRules = []struct {
	words     []string
	questions []string
}{
	{
		words: []string{"ลา", "พักร้อน"},
		questions: []string{
			"วิธีการขอลาป่วยฉุกเฉินต้องทำอย่างไร?",
			"สามารถลาพักร้อนแบบครึ่งวันได้หรือไม่?",
			"การลาคลอดมีสิทธิ์กี่วัน?",
			"ถ้าลาพักร้อนแล้วต้องมาทำงานด่วนจะเป็นอย่างไร?",
			"วันลาที่เหลือจากปีที่แล้วจะหมดอายุเมื่อไหร่?",
		},
	},
	{
		words: []string{"สินเชื่อ", "อนุมัติ"},
		questions: []string{
			"เอกสารที่ต้องใช้ในการขอสินเชื่อมีอะไรบ้าง?",
			"ระยะเวลาการพิจารณาสินเชื่อนานแค่ไหน?",
			"อัตราดอกเบี้ยสินเชื่อปัจจุบันเท่าไหร่?",
			"สามารถขอสินเชื่อเพิ่มเติมได้หรือไม่?",
			"หากลูกค้าผิดนัดชำระจะมีขั้นตอนอย่างไร?",
		},
	},
	{
		words: []string{"วันหยุด"},
		questions: []string{
			"วันหยุดชดเชยจะประกาศเมื่อไหร่?",
			"วันหยุดพิเศษมีเกณฑ์การกำหนดอย่างไร?",
			"หากวันหยุดตรงกับวันเสาร์-อาทิตย์จะเป็นอย่างไร?",
			"พนักงานต่างชาติมีสิทธิ์วันหยุดเหมือนกันหรือไม่?",
			"การทำงานในวันหยุดจะได้ค่าตอบแทนพิเศษหรือไม่?",
		},
	},
	{
		words: []string{"it", "ระบบ"},
		questions: []string{
			"วิธีการรีเซ็ตรหัสผ่านระบบทำอย่างไร?",
			"ระบบล่มต้องแจ้งใครก่อน?",
			"การขอสิทธิ์เข้าใช้ระบบใหม่ต้องทำอย่างไร?",
			"ข้อมูลสำรองระบบจะเก็บไว้นานแค่ไหน?",
			"การใช้งาน VPN ต้องขออนุมัติหรือไม่?",
		},
	},
}

var genericRelated = []string{
	"มีข้อมูลอะไรเพิ่มเติมเกี่ยวกับเรื่องนี้บ้าง?",
	"นโยบายล่าสุดเกี่ยวกับเรื่องนี้คืออะไร?",
	"ขั้นตอนการดำเนินการเป็นอย่างไร?",
	"ใครเป็นผู้รับผิดชอบเรื่องนี้?",
	"มีแบบฟอร์มหรือเอกสารที่เกี่ยวข้องหรือไม่?",
}

// RelatedQuestions suggests questions close to query, at most limit.
func RelatedQuestions(query string, limit int) []string {
	q := strings.ToLower(query)

	qs := genericRelated
outer:
	for _, r := range relatedRules {
		for _, w := range r.words {
			if strings.Contains(q, w) {
				qs = r.questions
				break outer
			}
		}
	}

	if limit > 0 && len(qs) > limit {
		qs = qs[:limit]
	}
	return append([]string(nil), qs...)
}
