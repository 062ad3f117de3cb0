package content

import "time"

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedDocuments is the catalog shipped with the portal.
func SeedDocuments() []Document {
	return []Document{
		{
			ID: "1", Title: "นโยบายการลาพักร้อนประจำปี 2568", Category: "hr", Version: "1.0",
			LastUpdated: mustTime("2024-01-15T10:30:00Z"), Author: "ฝ่ายทรัพยากรบุคคล", FileType: "pdf", Size: "245 KB",
			Tags: []string{"นโยบาย", "การลา", "HR", "พนักงาน"},
			Related: []Related{
				{ID: "2", Title: "นโยบายการลาพักร้อนประจำปี 2569"},
			},
		},
		{
			ID: "2", Title: "นโยบายการลาพักร้อนประจำปี 2569", Category: "hr", Version: "2.0",
			LastUpdated: mustTime("2024-12-01T14:20:00Z"), Author: "ฝ่ายทรัพยากรบุคคล", FileType: "pdf", Size: "267 KB",
			Tags: []string{"นโยบาย", "การลา", "HR", "พนักงาน"},
			Related: []Related{
				{ID: "1", Title: "นโยบายการลาพักร้อนประจำปี 2568"},
			},
		},
		{
			ID: "3", Title: "คู่มือการใช้งานระบบสินเชื่อ V1.5", Category: "credit", Version: "1.5",
			LastUpdated: mustTime("2024-06-15T09:15:00Z"), Author: "ฝ่ายสินเชื่อ", FileType: "pdf", Size: "1.2 MB",
		},
		{
			ID: "4", Title: "คู่มือการใช้งานระบบสินเชื่อ V2.0", Category: "credit", Version: "2.0",
			LastUpdated: mustTime("2024-11-20T16:45:00Z"), Author: "ฝ่ายสินเชื่อ", FileType: "pdf", Size: "1.5 MB",
		},
		{
			ID: "5", Title: "วิธีการแก้ไขปัญหาระบบ IT เบื้องต้น", Category: "it", Version: "1.0",
			LastUpdated: mustTime("2024-03-10T11:30:00Z"), Author: "ฝ่าย IT", FileType: "document", Size: "890 KB",
		},
		{
			ID: "6", Title: "วิธีการแก้ไขปัญหาระบบ IT เบื้องต้น (อัปเดต)", Category: "it", Version: "1.1",
			LastUpdated: mustTime("2024-10-05T13:20:00Z"), Author: "ฝ่าย IT", FileType: "document", Size: "945 KB",
		},
	}
}

// SeedContent maps document ids to their bodies.
func SeedContent() map[string]string {
	return map[string]string{
		"1": leavePolicy2568,
		"2": leavePolicy2569,
	}
}

const leavePolicy2568 = `# นโยบายการลาพักร้อนประจำปี 2568

## 1. หลักการและวัตถุประสงค์
นโยบายนี้จัดทำขึ้นเพื่อกำหนดหลักเกณฑ์และขั้นตอนการลาพักร้อนของพนักงานทุกระดับ

## 2. สิทธิการลาพักร้อน
### 2.1 จำนวนวันลา
- พนักงานที่ทำงานครบ 1 ปี: 6 วัน
- พนักงานที่ทำงานครบ 3 ปี: 10 วัน  
- พนักงานที่ทำงานครบ 5 ปี: 15 วัน

## 3. ขั้นตอนการขออนุมัติ
1. ยื่นคำขอล่วงหน้าอย่างน้อย 7 วัน
2. กรอกแบบฟอร์มคำขอลาพักร้อน
3. ส่งให้หัวหน้างานพิจารณาอนุมัติ

## 4. ข้อควรระวัง
- ไม่สามารถลาพักร้อนในช่วงปิดบัญชีประจำเดือน
- ต้องจัดให้มีคนทำงานแทนในช่วงที่ลา`

const leavePolicy2569 = `# นโยบายการลาพักร้อนประจำปี 2569

## 1. หลักการและวัตถุประสงค์
นโยบายนี้จัดทำขึ้นเพื่อกำหนดหลักเกณฑ์และขั้นตอนการลาพักร้อนของพนักงานทุกระดับ เพื่อให้เกิดความเป็นธรรมและความชัดเจน

## 2. สิทธิการลาพักร้อน
### 2.1 จำนวนวันลา
- พนักงานที่ทำงานครบ 1 ปี: 8 วัน
- พนักงานที่ทำงานครบ 3 ปี: 12 วัน  
- พนักงานที่ทำงานครบ 5 ปี: 18 วัน
- พนักงานที่ทำงานครบ 10 ปี: 25 วัน

### 2.2 การสะสมวันลา
- วันลาที่ไม่ได้ใช้สามารถสะสมได้ไม่เกิน 45 วัน
- วันลาที่เกิน 45 วันจะหมดอายุในวันที่ 31 ธันวาคม

## 3. ขั้นตอนการขออนุมัติ
1. ยื่นคำขอล่วงหน้าอย่างน้อย 5 วัน
2. กรอกแบบฟอร์มคำขอลาพักร้อนออนไลน์
3. ส่งให้หัวหน้างานพิจารณาอนุมัติ
4. รอการอนุมัติจากระบบ HR

## 4. ข้อควรระวัง
- ไม่สามารถลาพักร้อนในช่วงปิดบัญชีประจำเดือนและไตรมาส
- ต้องจัดให้มีคนทำงานแทนในช่วงที่ลา
- สามารถยกเลิกการลาได้ภายใน 24 ชั่วโมงก่อนวันลา`
