package reports

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tahfiz/listening/internal/entities"
)

// Arabic labels shared between the workbook sheets.
const (
	labelYes          = "نعم"
	labelNo           = "لا"
	labelNotSpecified = "غير محدد"
)

const dateLayout = "02/01/2006"

// StudentProgressExcel renders the student progress report as an Excel
// workbook and returns its bytes.
func (s *Service) StudentProgressExcel(studentID uuid.UUID, from, to time.Time) ([]byte, error) {
	report, err := s.StudentProgress(studentID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := s.surahs.ArabicNames()
	if err != nil {
		return nil, err
	}

	wb := newWorkbook()
	defer wb.file.Close()

	info := wb.addSheet("معلومات الطالب")
	wb.setTitle(info, "معلومات الطالب")
	wb.setPairs(info, 3, [][2]any{
		{"الاسم:", report.Student.FullNameArabic},
		{"رقم الهوية:", stringOrEmpty(report.Student.IDNumber)},
		{"الصف:", stringOrEmpty(report.Student.GradeLevel)},
		{"من تاريخ:", report.FromDate.Format(dateLayout)},
		{"إلى تاريخ:", report.ToDate.Format(dateLayout)},
	})
	wb.finishSheet(info)

	sessions := wb.addSheet("جلسات الاستماع")
	wb.setHeaders(sessions, []string{"التاريخ", "المعلم", "السورة", "من آية", "إلى آية", "أخطاء كبيرة", "أخطاء صغيرة", "مكتملة", "ملاحظات"})
	for i, session := range report.Sessions {
		wb.setRow(sessions, i+2, sessionRow(session, partyName(session.Teacher), names))
	}
	wb.finishSheet(sessions)

	summary := wb.addSheet("الملخص")
	wb.setTitle(summary, "ملخص الأداء")
	wb.setPairs(summary, 3, [][2]any{
		{"إجمالي الجلسات:", report.Summary.TotalSessions},
		{"الجلسات المكتملة:", report.Summary.CompletedSessions},
		{"معدل الإكمال:", formatPercent(report.Summary.CompletionRate())},
		{"متوسط الأخطاء الكبيرة:", fmt.Sprintf("%.1f", report.Summary.AverageMajorErrors())},
		{"متوسط الأخطاء الصغيرة:", fmt.Sprintf("%.1f", report.Summary.AverageMinorErrors())},
	})
	wb.finishSheet(summary)

	return wb.bytes()
}

// TeacherActivityExcel renders the teacher activity report as an Excel
// workbook and returns its bytes.
func (s *Service) TeacherActivityExcel(teacherID uuid.UUID, from, to time.Time) ([]byte, error) {
	report, err := s.TeacherActivity(teacherID, from, to)
	if err != nil {
		return nil, err
	}
	names, err := s.surahs.ArabicNames()
	if err != nil {
		return nil, err
	}

	wb := newWorkbook()
	defer wb.file.Close()

	info := wb.addSheet("معلومات المعلم")
	wb.setTitle(info, "معلومات المعلم")
	wb.setPairs(info, 3, [][2]any{
		{"الاسم:", report.Teacher.FullNameArabic},
		{"اسم المستخدم:", report.Teacher.Username},
		{"من تاريخ:", report.FromDate.Format(dateLayout)},
		{"إلى تاريخ:", report.ToDate.Format(dateLayout)},
	})
	wb.finishSheet(info)

	sessions := wb.addSheet("الجلسات المسجلة")
	wb.setHeaders(sessions, []string{"التاريخ", "الطالب", "السورة", "من آية", "إلى آية", "أخطاء كبيرة", "أخطاء صغيرة", "مكتملة", "ملاحظات"})
	for i, session := range report.Sessions {
		wb.setRow(sessions, i+2, sessionRow(session, partyName(session.Student), names))
	}
	wb.finishSheet(sessions)

	summary := wb.addSheet("الملخص")
	wb.setTitle(summary, "ملخص النشاط")
	wb.setPairs(summary, 3, [][2]any{
		{"إجمالي الجلسات:", report.Summary.TotalSessions},
		{"الجلسات المكتملة:", report.Summary.CompletedSessions},
		{"عدد الطلاب:", report.Summary.UniqueStudents},
		{"معدل الإكمال:", formatPercent(report.Summary.CompletionRate())},
	})
	wb.finishSheet(summary)

	return wb.bytes()
}

// SystemSummaryExcel renders the school-wide report as an Excel workbook
// and returns its bytes.
func (s *Service) SystemSummaryExcel(from, to time.Time) ([]byte, error) {
	report, err := s.SystemSummary(from, to)
	if err != nil {
		return nil, err
	}
	names, err := s.surahs.ArabicNames()
	if err != nil {
		return nil, err
	}

	wb := newWorkbook()
	defer wb.file.Close()

	overview := wb.addSheet("نظرة عامة")
	wb.setTitle(overview, "ملخص النظام")
	wb.setPairs(overview, 3, [][2]any{
		{"فترة التقرير:", fmt.Sprintf("%s - %s", report.FromDate.Format(dateLayout), report.ToDate.Format(dateLayout))},
		{"إجمالي المعلمين:", report.Summary.TotalTeachers},
		{"المعلمون النشطون:", report.Summary.ActiveTeachers},
		{"إجمالي الطلاب:", report.Summary.TotalStudents},
		{"الطلاب النشطون:", report.Summary.ActiveStudents},
		{"إجمالي الجلسات:", report.Summary.TotalSessions},
		{"الجلسات المكتملة:", report.Summary.CompletedSessions},
		{"معدل الإكمال:", formatPercent(report.Summary.CompletionRate())},
	})
	wb.finishSheet(overview)

	teachers := wb.addSheet("المعلمون")
	wb.setHeaders(teachers, []string{"المعلم", "عدد الجلسات", "عدد الطلاب", "جلسات مكتملة", "معدل الإكمال"})
	for i, t := range report.Teachers {
		wb.setRow(teachers, i+2, []any{
			t.Teacher.FullNameArabic,
			t.SessionsCount,
			t.StudentsCount,
			t.CompletedSessions,
			formatPercent(t.CompletionRate()),
		})
	}
	wb.finishSheet(teachers)

	students := wb.addSheet("الطلاب المتميزون")
	wb.setHeaders(students, []string{"الطالب", "عدد الجلسات", "جلسات مكتملة", "معدل الإكمال", "آخر جلسة"})
	for i, st := range report.TopStudents {
		lastSession := ""
		if !st.LastSessionDate.IsZero() {
			lastSession = st.LastSessionDate.Format(dateLayout)
		}
		wb.setRow(students, i+2, []any{
			st.Student.FullNameArabic,
			st.SessionsCount,
			st.CompletedSessions,
			formatPercent(st.CompletionRate()),
			lastSession,
		})
	}
	wb.finishSheet(students)

	recent := wb.addSheet("الجلسات الأخيرة")
	wb.setHeaders(recent, []string{"التاريخ", "المعلم", "الطالب", "السورة", "من آية", "إلى آية", "مكتملة"})
	for i, session := range report.RecentSessions {
		wb.setRow(recent, i+2, []any{
			session.SessionDate.Format(dateLayout),
			partyName(session.Teacher),
			partyName(session.Student),
			surahLabel(names, session.SurahNumber),
			session.FromAyah,
			session.ToAyah,
			completedLabel(session.IsCompleted),
		})
	}
	wb.finishSheet(recent)

	return wb.bytes()
}

// workbook wraps an excelize file with the shared header and title styles
// and tracks column content widths per sheet for the final auto-fit pass.
type workbook struct {
	file        *excelize.File
	titleStyle  int
	headerStyle int
	widths      map[string][]int
	firstSheet  bool
}

func newWorkbook() *workbook {
	f := excelize.NewFile()
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	return &workbook{
		file:        f,
		titleStyle:  titleStyle,
		headerStyle: headerStyle,
		widths:      make(map[string][]int),
		firstSheet:  true,
	}
}

// addSheet creates a sheet with the given name, reusing the workbook's
// default sheet for the first one.
func (w *workbook) addSheet(name string) string {
	if w.firstSheet {
		w.firstSheet = false
		w.file.SetSheetName(w.file.GetSheetName(0), name)
	} else {
		w.file.NewSheet(name)
	}
	return name
}

func (w *workbook) setTitle(sheet, title string) {
	cell, _ := excelize.CoordinatesToCellName(1, 1)
	w.file.SetCellValue(sheet, cell, title)
	w.file.SetCellStyle(sheet, cell, cell, w.titleStyle)
	w.trackWidth(sheet, 1, title)
}

// setPairs writes label/value rows in columns A and B starting at the
// given row.
func (w *workbook) setPairs(sheet string, startRow int, pairs [][2]any) {
	for i, pair := range pairs {
		w.setCell(sheet, 1, startRow+i, pair[0])
		w.setCell(sheet, 2, startRow+i, pair[1])
	}
}

func (w *workbook) setHeaders(sheet string, headers []string) {
	for i, header := range headers {
		w.setCell(sheet, i+1, 1, header)
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	w.file.SetCellStyle(sheet, first, last, w.headerStyle)
}

func (w *workbook) setRow(sheet string, row int, values []any) {
	for i, value := range values {
		w.setCell(sheet, i+1, row, value)
	}
}

func (w *workbook) setCell(sheet string, col, row int, value any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	w.file.SetCellValue(sheet, cell, value)
	w.trackWidth(sheet, col, fmt.Sprint(value))
}

func (w *workbook) trackWidth(sheet string, col int, content string) {
	widths := w.widths[sheet]
	for len(widths) < col {
		widths = append(widths, 0)
	}
	if n := utf8.RuneCountInString(content); n > widths[col-1] {
		widths[col-1] = n
	}
	w.widths[sheet] = widths
}

// finishSheet sizes the columns to their content and flips the view to
// right-to-left.
func (w *workbook) finishSheet(sheet string) {
	for i, width := range w.widths[sheet] {
		name, _ := excelize.ColumnNumberToName(i + 1)
		w.file.SetColWidth(sheet, name, name, float64(width)+4)
	}
	rtl := true
	w.file.SetSheetView(sheet, -1, &excelize.ViewOptions{RightToLeft: &rtl})
}

func (w *workbook) bytes() ([]byte, error) {
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sessionRow builds one sheet row for a session. The counterparty column
// differs between the student and teacher reports, so the caller names it.
func sessionRow(session entities.ListeningSession, counterparty string, names map[int]string) []any {
	return []any{
		session.SessionDate.Format(dateLayout),
		counterparty,
		surahLabel(names, session.SurahNumber),
		session.FromAyah,
		session.ToAyah,
		session.MajorErrors,
		session.MinorErrors,
		completedLabel(session.IsCompleted),
		stringOrEmpty(session.Notes),
	}
}

func partyName(user entities.User) string {
	if user.FullNameArabic == "" {
		return labelNotSpecified
	}
	return user.FullNameArabic
}

func surahLabel(names map[int]string, number int) string {
	if name, ok := names[number]; ok {
		return name
	}
	return fmt.Sprintf("سورة %d", number)
}

func completedLabel(completed bool) string {
	if completed {
		return labelYes
	}
	return labelNo
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
