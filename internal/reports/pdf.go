package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/tahfiz/listening/internal/config"
)

// StudentProgressPDF renders the student progress report as a PDF document
// and returns its bytes.
func (s *Service) StudentProgressPDF(studentID uuid.UUID, from, to time.Time) ([]byte, error) {
	report, err := s.StudentProgress(studentID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := s.surahs.ArabicNames()
	if err != nil {
		return nil, err
	}

	doc := newDocument(s.config, fmt.Sprintf("تقرير تقدم الطالب - %s", report.Student.FullNameArabic))

	doc.heading("معلومات الطالب")
	doc.line(fmt.Sprintf("الاسم: %s", report.Student.FullNameArabic))
	doc.line(fmt.Sprintf("رقم الهوية: %s", stringOrEmpty(report.Student.IDNumber)))
	doc.line(fmt.Sprintf("الصف: %s", stringOrEmpty(report.Student.GradeLevel)))
	doc.line(fmt.Sprintf("فترة التقرير: %s - %s", from.Format(dateLayout), to.Format(dateLayout)))

	doc.heading("ملخص الأداء")
	doc.line(fmt.Sprintf("إجمالي الجلسات: %d", report.Summary.TotalSessions))
	doc.line(fmt.Sprintf("الجلسات المكتملة: %d", report.Summary.CompletedSessions))
	doc.line(fmt.Sprintf("معدل الإكمال: %s", formatPercent(report.Summary.CompletionRate())))
	doc.line(fmt.Sprintf("متوسط الأخطاء الكبيرة: %.1f", report.Summary.AverageMajorErrors()))
	doc.line(fmt.Sprintf("متوسط الأخطاء الصغيرة: %.1f", report.Summary.AverageMinorErrors()))

	if len(report.Sessions) > 0 {
		doc.heading("تفاصيل الجلسات")
		// Columns run right to left: the date lands on the right edge.
		headers := []string{"الحالة", "أخطاء صغيرة", "أخطاء كبيرة", "نطاق السور", "المعلم", "التاريخ"}
		widths := []float64{22, 18, 18, 42, 42, 28}
		rows := make([][]string, 0, len(report.Sessions))
		for _, session := range report.Sessions {
			status := "غير مكتمل"
			if session.IsCompleted {
				status = "مكتمل"
			}
			rang := fmt.Sprintf("%s (%d-%d)", surahLabel(names, session.SurahNumber), session.FromAyah, session.ToAyah)
			rows = append(rows, []string{
				status,
				fmt.Sprintf("%d", session.MinorErrors),
				fmt.Sprintf("%d", session.MajorErrors),
				rang,
				partyName(session.Teacher),
				session.SessionDate.Format(dateLayout),
			})
		}
		doc.table(headers, widths, rows)
	}

	return doc.bytes()
}

// TeacherActivityPDF renders the teacher activity report as a PDF document
// and returns its bytes.
func (s *Service) TeacherActivityPDF(teacherID uuid.UUID, from, to time.Time) ([]byte, error) {
	report, err := s.TeacherActivity(teacherID, from, to)
	if err != nil {
		return nil, err
	}

	doc := newDocument(s.config, fmt.Sprintf("تقرير نشاط المعلم - %s", report.Teacher.FullNameArabic))

	doc.heading("معلومات المعلم")
	doc.line(fmt.Sprintf("الاسم: %s", report.Teacher.FullNameArabic))
	doc.line(fmt.Sprintf("اسم المستخدم: %s", report.Teacher.Username))
	doc.line(fmt.Sprintf("فترة التقرير: %s - %s", from.Format(dateLayout), to.Format(dateLayout)))

	doc.heading("ملخص النشاط")
	doc.line(fmt.Sprintf("إجمالي الجلسات: %d", report.Summary.TotalSessions))
	doc.line(fmt.Sprintf("الجلسات المكتملة: %d", report.Summary.CompletedSessions))
	doc.line(fmt.Sprintf("عدد الطلاب: %d", report.Summary.UniqueStudents))
	doc.line(fmt.Sprintf("معدل الإكمال: %s", formatPercent(report.Summary.CompletionRate())))

	if len(report.Summary.SessionsByStudent) > 0 {
		doc.heading("ملخص الجلسات حسب الطالب")
		headers := []string{"أخطاء صغيرة", "أخطاء كبيرة", "مكتملة", "إجمالي الجلسات", "اسم الطالب"}
		widths := []float64{20, 20, 20, 26, 84}
		rows := make([][]string, 0, len(report.Summary.SessionsByStudent))
		for _, st := range report.Summary.SessionsByStudent {
			rows = append(rows, []string{
				fmt.Sprintf("%d", st.MinorErrors),
				fmt.Sprintf("%d", st.MajorErrors),
				fmt.Sprintf("%d", st.CompletedCount),
				fmt.Sprintf("%d", st.SessionCount),
				st.Student.FullNameArabic,
			})
		}
		doc.table(headers, widths, rows)
	}

	return doc.bytes()
}

// SystemSummaryPDF renders the school-wide report as a PDF document and
// returns its bytes.
func (s *Service) SystemSummaryPDF(from, to time.Time) ([]byte, error) {
	report, err := s.SystemSummary(from, to)
	if err != nil {
		return nil, err
	}

	doc := newDocument(s.config, "تقرير ملخص النظام")

	doc.line(fmt.Sprintf("فترة التقرير: %s - %s", from.Format(dateLayout), to.Format(dateLayout)))

	doc.heading("الإحصائيات العامة")
	doc.line(fmt.Sprintf("إجمالي المعلمين: %d", report.Summary.TotalTeachers))
	doc.line(fmt.Sprintf("المعلمون النشطون: %d", report.Summary.ActiveTeachers))
	doc.line(fmt.Sprintf("إجمالي الطلاب: %d", report.Summary.TotalStudents))
	doc.line(fmt.Sprintf("الطلاب النشطون: %d", report.Summary.ActiveStudents))
	doc.line(fmt.Sprintf("إجمالي الجلسات: %d", report.Summary.TotalSessions))
	doc.line(fmt.Sprintf("الجلسات المكتملة: %d", report.Summary.CompletedSessions))
	doc.line(fmt.Sprintf("معدل الإكمال: %s", formatPercent(report.Summary.CompletionRate())))

	if len(report.Teachers) > 0 {
		doc.heading("أداء المعلمين")
		headers := []string{"معدل الإكمال", "الطلاب", "الجلسات", "المعلم"}
		widths := []float64{26, 20, 20, 104}
		teachers := report.Teachers
		if len(teachers) > topStudentsCount {
			teachers = teachers[:topStudentsCount]
		}
		rows := make([][]string, 0, len(teachers))
		for _, t := range teachers {
			rows = append(rows, []string{
				formatPercent(t.CompletionRate()),
				fmt.Sprintf("%d", t.StudentsCount),
				fmt.Sprintf("%d", t.SessionsCount),
				t.Teacher.FullNameArabic,
			})
		}
		doc.table(headers, widths, rows)
	}

	return doc.bytes()
}

// document wraps an fpdf page with the report typography: an A4 portrait
// page with 2cm margins, a configurable Arabic-capable font, a centered
// title and a generation timestamp footer.
type document struct {
	pdf  *fpdf.Fpdf
	font string
}

func newDocument(cfg config.Reports, title string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(cfg.FontName, "", cfg.FontPath)
	pdf.AddUTF8Font(cfg.FontName, "B", cfg.FontPath)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)

	generated := fmt.Sprintf("تم إنشاء التقرير في %s", time.Now().Format("02/01/2006 15:04"))
	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetFont(cfg.FontName, "", 10)
		pdf.CellFormat(0, 10, generated, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(cfg.FontName, "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont(cfg.FontName, "", 12)

	return &document{pdf: pdf, font: cfg.FontName}
}

func (d *document) heading(text string) {
	d.pdf.Ln(6)
	d.pdf.SetFont(d.font, "B", 14)
	d.pdf.CellFormat(0, 8, text, "", 1, "R", false, 0, "")
	d.pdf.SetFont(d.font, "", 12)
}

func (d *document) line(text string) {
	d.pdf.CellFormat(0, 7, text, "", 1, "R", false, 0, "")
}

func (d *document) table(headers []string, widths []float64, rows [][]string) {
	d.pdf.SetFont(d.font, "B", 11)
	d.pdf.SetFillColor(224, 224, 224)
	for i, header := range headers {
		d.pdf.CellFormat(widths[i], 8, header, "1", 0, "R", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont(d.font, "", 11)
	for _, row := range rows {
		for i, cell := range row {
			d.pdf.CellFormat(widths[i], 7, cell, "1", 0, "R", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
