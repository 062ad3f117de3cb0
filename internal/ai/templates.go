package ai

import (
	"fmt"
	"strings"
)

var (
	greeting = Keywords("สวัสดี", "หวัดดี")
	leave    = Keywords("ลา", "พักร้อน")
	credit   = Keywords("สินเชื่อ", "อนุมัติ")
	holiday  = Keywords("วันหยุด")
)

// NewChatEngine answers short conversational chat messages.
func NewChatEngine() *RuleEngine {
	return NewRuleEngine("rules", []Rule{
		{
			Name:  "greeting",
			Match: greeting,
			Respond: Fixed(Answer{
				Text:        "สวัสดีครับ! ยินดีที่ได้รู้จัก มีอะไรให้ช่วยเหลือไหมครับ?",
				Confidence:  0.95,
				Suggestions: []string{"นโยบายการลา", "ขั้นตอนการอนุมัติ", "คู่มือการใช้งาน"},
			}),
		},
		{
			Name:  "leave",
			Match: leave,
			Respond: Fixed(Answer{
				Text: "เรื่องการลาพักร้อนนะครับ ตามนโยบายบริษัท:\n\n📋 **สิทธิการลา:**\n• ทำงานครบ 1 ปี: 6 วัน\n• ทำงานครบ 3 ปี: 10 วัน\n• ทำงานครบ 5 ปี: 15 วัน\n\n" +
					"📝 **ขั้นตอน:**\n1. ยื่นคำขอล่วงหน้า 7 วัน\n2. กรอกแบบฟอร์มคำขอ\n3. รอการอนุมัติจากหัวหน้า\n\nต้องการรายละเอียดเพิ่มเติมไหมครับ?",
				Confidence:  0.92,
				Suggestions: []string{"แบบฟอร์มคำขอลา", "การลาป่วย", "วันลาสะสม"},
			}),
		},
		{
			Name:  "credit",
			Match: credit,
			Respond: Fixed(Answer{
				Text: "💳 **ขั้นตอนการอนุมัติสินเชื่อ:**\n\n1️⃣ **ตรวจสอบเอกสาร**\n• เอกสารประกอบการพิจารณา\n• ยืนยันตัวตนลูกค้า\n\n" +
					"2️⃣ **ประเมินความเสี่ยง**\n• วิเคราะห์รายได้-หนี้สิน\n• ตรวจสอบเครดิตประวัติ\n\n" +
					"3️⃣ **การอนุมัติ**\n• < 500K: หัวหน้าสาขา\n• 500K-2M: ผู้จัดการภูมิภาค\n• > 2M: คณะกรรมการ\n\n⏱️ **ระยะเวลา:** 3-5 วันทำการ",
				Confidence:  0.89,
				Suggestions: []string{"เอกสารประกอบ", "อัตราดอกเบี้ย", "เงื่อนไขการอนุมัติ"},
			}),
		},
		{
			Name:  "it",
			Match: Keywords("it", "ระบบ", "คอมพิวเตอร์"),
			Respond: Fixed(Answer{
				Text: "💻 **การแก้ไขปัญหาระบบ IT:**\n\n🔧 **ปัญหาที่พบบ่อย:**\n• ไม่สามารถเข้าระบบ → รีเซ็ตรหัสผ่าน\n• ระบบช้า → ปิดโปรแกรมที่ไม่ใช้\n• เครือข่ายขัดข้อง → ตรวจสอบสาย LAN\n\n" +
					"📞 **ติดต่อ IT Support:**\n• โทร: ext. 1234\n• Email: itsupport@company.com\n• Line: @itsupport\n\nต้องการความช่วยเหลือเรื่องอะไรเฉพาะเจาะจงไหมครับ?",
				Confidence:  0.87,
				Suggestions: []string{"รีเซ็ตรหัสผ่าน", "ปัญหาเครือข่าย", "ติดต่อ IT Support"},
			}),
		},
	}, func(r Request) Answer {
		return Answer{
			Text: fmt.Sprintf("ขอบคุณสำหรับคำถาม \"%s\" ครับ\n\nผมจะช่วยค้นหาข้อมูลที่เกี่ยวข้องให้คุณ กรุณารอสักครู่นะครับ...\n\n"+
				"หรือคุณสามารถเลือกหัวข้อที่สนใจจากด้านล่างได้เลยครับ", r.Question),
			Confidence:  0.75,
			Suggestions: []string{"นโยบาย HR", "ขั้นตอนการทำงาน", "คู่มือการใช้งาน", "กฎระเบียบ"},
		}
	})
}

// NewAnswerEngine produces the long-form answer shown above search results.
func NewAnswerEngine() *RuleEngine {
	return NewRuleEngine("rules", []Rule{
		{
			Name:  "leave",
			Match: leave,
			Respond: Fixed(Answer{
				Text: "ตามนโยบายการลาพักร้อนของบริษัท พนักงานมีสิทธิ์ลาพักร้อนดังนี้:\n\n" +
					"**สิทธิการลาตามอายุงาน:**\n- พนักงานที่ทำงานครบ 1 ปี: 6 วัน\n- พนักงานที่ทำงานครบ 3 ปี: 10 วัน\n- พนักงานที่ทำงานครบ 5 ปี: 15 วัน\n- พนักงานที่ทำงานครบ 10 ปี: 20 วัน\n\n" +
					"**ขั้นตอนการขออนุมัติ:**\n1. ยื่นคำขอล่วงหน้าอย่างน้อย 7 วัน\n2. กรอกแบบฟอร์มคำขอลาพักร้อน\n3. ส่งให้หัวหน้างานพิจารณาอนุมัติ\n\n" +
					"**ข้อควรระวัง:**\n- ไม่สามารถลาพักร้อนในช่วงปิดบัญชีประจำเดือน\n- ต้องจัดให้มีคนทำงานแทนในช่วงที่ลา\n- วันลาที่ไม่ได้ใช้สามารถสะสมได้ไม่เกิน 30 วัน",
				Confidence: 0.95,
				Kind:       "detailed",
			}),
		},
		{
			Name:  "credit",
			Match: credit,
			Respond: Fixed(Answer{
				Text: "ขั้นตอนการอนุมัติสินเชื่อมีดังนี้:\n\n" +
					"**1. การตรวจสอบเอกสาร**\n- ตรวจสอบความครบถ้วนของเอกสาร\n- ยืนยันตัวตนของลูกค้า\n- ตรวจสอบประวัติเครดิต\n\n" +
					"**2. การประเมินความเสี่ยง**\n- วิเคราะห์รายได้และหนี้สิน\n- ประเมินความสามารถในการชำระหนี้\n- พิจารณาหลักประกัน\n\n" +
					"**3. การอนุมัติ**\n- วงเงินต่ำกว่า 500,000 บาท: หัวหน้าสาขาอนุมัติ\n- วงเงิน 500,000 - 2,000,000 บาท: ผู้จัดการภูมิภาคอนุมัติ\n- วงเงินเกิน 2,000,000 บาท: คณะกรรมการสินเชื่ออนุมัติ\n\n" +
					"**ระยะเวลาการพิจารณา:** 3-5 วันทำการ",
				Confidence: 0.92,
				Kind:       "detailed",
			}),
		},
		{
			Name:  "holiday",
			Match: holiday,
			Respond: Fixed(Answer{
				Text: "วันหยุดประจำปี 2568-2569 มีการเปลี่ยนแปลงดังนี้:\n\n" +
					"**วันหยุดที่เพิ่มขึ้น:**\n- วันหยุดพิเศษเฉลิมพระชนมพรรษา (28 กรกฎาคม 2569)\n- วันหยุดสงกรานต์เพิ่มเป็น 4 วัน (13-16 เมษายน 2569)\n\n" +
					"**วันหยุดที่ยกเลิก:**\n- วันหยุดชดเชยโควิด-19 (ยกเลิกในปี 2569)\n\n" +
					"**วันหยุดที่ไม่เปลี่ยนแปลง:**\n- วันปีใหม่ (1 มกราคม)\n- วันสงกรานต์ (13-15 เมษายน)\n- วันแรงงาน (1 พฤษภาคม)\n\n" +
					"รวมวันหยุดทั้งปี 2569: 18 วัน",
				Confidence: 0.98,
				Kind:       "detailed",
			}),
		},
		{
			Name:  "it",
			Match: Keywords("it", "แก้ไข", "ปัญหา"),
			Respond: Fixed(Answer{
				Text: "วิธีการแก้ไขปัญหาระบบ IT เบื้องต้น:\n\n**ปัญหาที่พบบ่อย:**\n\n" +
					"1. **ไม่สามารถเข้าระบบได้**\n   - ตรวจสอบ Username และ Password\n   - ลองรีเซ็ตรหัสผ่านผ่านระบบ\n   - ติดต่อ IT Support: ext. 1234\n\n" +
					"2. **ระบบช้า**\n   - ปิดโปรแกรมที่ไม่ใช้งาน\n   - ล้าง Cache ของ Browser\n   - รีสตาร์ทคอมพิวเตอร์\n\n" +
					"3. **เครือข่ายขัดข้อง**\n   - ตรวจสอบสาย LAN\n   - ลองเชื่อมต่อ WiFi ใหม่\n   - แจ้ง IT Support หากปัญหายังไม่หาย\n\n" +
					"**ติดต่อ IT Support:**\n- โทร: ext. 1234\n- Email: itsupport@company.com\n- Line: @itsupport",
				Confidence: 0.89,
				Kind:       "detailed",
			}),
		},
	}, summarize)
}

func summarize(r Request) Answer {
	var b strings.Builder
	fmt.Fprintf(&b, "จากการค้นหาคำว่า \"%s\" พบข้อมูลที่เกี่ยวข้อง %d รายการ\n\nข้อมูลหลักที่พบ:\n", r.Question, len(r.SearchResults))

	for i, title := range r.SearchResults {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}

	b.WriteString("\nคุณสามารถดูรายละเอียดเพิ่มเติมได้จากเอกสารด้านล่าง หรือปรับคำค้นหาให้ชัดเจนขึ้นเพื่อผลลัพธ์ที่ดีกว่า")

	return Answer{
		Text:       b.String(),
		Confidence: 0.75,
		Kind:       "summary",
	}
}
