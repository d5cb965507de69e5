package chat

import (
	"fmt"
	"html"
	"strings"

	"github.com/taingy-srun/portfolio/internal/domain/resume"
)

// Topic names, in the order they are tried.
const (
	TopicExperience  = "experience"
	TopicSkills      = "skills"
	TopicEducation   = "education"
	TopicContact     = "contact"
	TopicCuraPatient = "company:" + resume.SlugCuraPatient
	TopicPiPay       = "company:" + resume.SlugPiPay
	TopicAgribuddy   = "company:" + resume.SlugAgribuddy
	TopicTrueMoney   = "company:" + resume.SlugTrueMoney
	TopicJava        = "tech:java"
	TopicFrontend    = "tech:frontend"
	TopicMobile      = "tech:mobile"
	TopicCloud       = "tech:cloud"
	TopicAbout       = "about"
	TopicFallback    = "fallback"
)

const (
	javaAnswer = "Yes! She has extensive experience with Java, including Spring Boot, Spring MVC, Hibernate, JPA, " +
		"and microservices architecture. She's used Java in multiple companies including CuraPatient and Pi Pay."
	frontendAnswer = "She has strong frontend development skills with Angular, TypeScript, JavaScript, HTML5, and CSS3. " +
		"She's built full-stack healthcare web applications using Angular at CuraPatient."
	mobileAnswer = "She has extensive Android development experience using both Java and Kotlin. She's worked on mobile " +
		"apps at TrueMoney, Agribuddy, and Pi Pay, implementing features like KHQR payments, offline storage, and Bluetooth printing."
	cloudAnswer = "She has experience with AWS services including S3, Lambda, RDS, Glue, and Step Functions. At CuraPatient, " +
		"she designed and deployed an ETL data pipeline processing 500M+ records with 99.9% uptime."
)

// Answer is the responder's reply. Text is trusted markup.
type Answer struct {
	Topic string
	Text  string
}

// topic pairs a predicate over the lower-cased question with the renderer
// that answers it. A renderer returning false passes to the next topic.
type topic struct {
	name    string
	matches func(q string) bool
	render  func(r *resume.Record) (string, bool)
}

// Responder answers free-text questions about one résumé. It never mutates
// its record, so one value can be shared by every request.
type Responder struct {
	record   *resume.Record
	topics   []topic
	fallback string
}

func NewResponder(record *resume.Record) *Responder {
	r := &Responder{record: record.Clone()}
	r.topics = []topic{
		{TopicExperience, containsAny("experience", "work", "job"), renderExperienceList},
		{TopicSkills, containsAny("skill", "technolog", "tech stack", "tech "), renderSkills},
		{TopicEducation, containsAny("education", "degree", "university", "school"), renderEducation},
		{TopicContact, containsAny("contact", "email", "phone", "reach"), renderContact},
		{TopicCuraPatient, containsAny("curapatient", "healthcare"), renderCompany(resume.SlugCuraPatient)},
		{TopicPiPay, containsAny("pi pay", "payment", "fintech"), renderCompany(resume.SlugPiPay)},
		{TopicAgribuddy, containsAny("agribuddy", "agri"), renderCompany(resume.SlugAgribuddy)},
		{TopicTrueMoney, containsAny("truemoney", "true money"), renderCompany(resume.SlugTrueMoney)},
		{TopicJava, containsAny("java"), fixed(javaAnswer)},
		{TopicFrontend, containsAny("angular", "frontend"), fixed(frontendAnswer)},
		{TopicMobile, containsAny("android", "mobile"), fixed(mobileAnswer)},
		{TopicCloud, containsAny("aws", "cloud"), fixed(cloudAnswer)},
		{TopicAbout, containsAny("about", "who are you", "summary"), renderAbout},
	}
	r.fallback = renderFallback(r.record)
	return r
}

// Respond classifies the question and renders the first matching topic.
// It always returns a non-empty answer.
func (r *Responder) Respond(question string) Answer {
	q := strings.ToLower(question)
	for _, t := range r.topics {
		if !t.matches(q) {
			continue
		}
		if text, ok := t.render(r.record); ok {
			return Answer{Topic: t.name, Text: text}
		}
	}
	return Answer{Topic: TopicFallback, Text: r.fallback}
}

// Topics lists the topic names in evaluation order, fallback last.
func (r *Responder) Topics() []string {
	names := make([]string, 0, len(r.topics)+1)
	for _, t := range r.topics {
		names = append(names, t.name)
	}
	return append(names, TopicFallback)
}

// Record returns a copy of the résumé being answered from.
func (r *Responder) Record() *resume.Record {
	return r.record.Clone()
}

func containsAny(triggers ...string) func(string) bool {
	return func(q string) bool {
		for _, t := range triggers {
			if strings.Contains(q, t) {
				return true
			}
		}
		return false
	}
}

func fixed(text string) func(*resume.Record) (string, bool) {
	return func(*resume.Record) (string, bool) { return text, true }
}

var esc = html.EscapeString

func renderExperienceList(r *resume.Record) (string, bool) {
	var b strings.Builder
	b.WriteString("<strong>Work Experience:</strong><br><br>")
	for _, e := range r.Experience {
		fmt.Fprintf(&b, "<strong>%s</strong> at %s<br>", esc(e.Title), esc(e.Company))
		fmt.Fprintf(&b, "%s | %s<br><br>", esc(e.Location), esc(e.Period))
	}
	return b.String(), true
}

func renderSkills(r *resume.Record) (string, bool) {
	var b strings.Builder
	b.WriteString("<strong>Technical Skills:</strong>")
	for _, c := range r.Skills {
		items := make([]string, len(c.Items))
		for i, s := range c.Items {
			items[i] = esc(s)
		}
		fmt.Fprintf(&b, "<br><br><strong>%s:</strong> %s", esc(c.Label), strings.Join(items, ", "))
	}
	return b.String(), true
}

func renderEducation(r *resume.Record) (string, bool) {
	items := make([]string, len(r.Education))
	for i, e := range r.Education {
		items[i] = esc(e)
	}
	return "<strong>Education:</strong><br><br>" + strings.Join(items, "<br><br>"), true
}

func renderContact(r *resume.Record) (string, bool) {
	var b strings.Builder
	b.WriteString("<strong>Contact Information:</strong><br><br>")
	fmt.Fprintf(&b, "📧 Email: %s<br>", esc(r.Email))
	fmt.Fprintf(&b, "📱 Phone: %s<br>", esc(r.Phone))
	fmt.Fprintf(&b, "📍 Location: %s<br>", esc(r.Location))
	fmt.Fprintf(&b, `💼 LinkedIn: <a href="%s" target="_blank">View Profile</a><br>`, esc(r.LinkedIn))
	fmt.Fprintf(&b, `💻 GitHub: <a href="%s" target="_blank">View Profile</a>`, esc(r.GitHub))
	return b.String(), true
}

func renderCompany(slug string) func(*resume.Record) (string, bool) {
	return func(r *resume.Record) (string, bool) {
		e, ok := r.ExperienceBySlug(slug)
		if !ok {
			return "", false
		}
		var b strings.Builder
		fmt.Fprintf(&b, "<strong>%s at %s</strong><br>", esc(e.Title), esc(e.Company))
		fmt.Fprintf(&b, "%s | %s<br><br>", esc(e.Location), esc(e.Period))
		b.WriteString("Key achievements:<br>")
		for i, h := range e.Highlights {
			if i > 0 {
				b.WriteString("<br>")
			}
			b.WriteString("• " + esc(h))
		}
		return b.String(), true
	}
}

func renderAbout(r *resume.Record) (string, bool) {
	return fmt.Sprintf("%s<br><br>She's currently based in %s and willing to relocate.", esc(r.Summary), esc(r.Location)), true
}

func renderFallback(r *resume.Record) string {
	name := "the owner"
	if fields := strings.Fields(r.Name); len(fields) > 0 {
		name = fields[0]
	}
	return "I can help you learn about " + esc(name) + "'s:<br><br>" +
		"• Work experience and projects<br>" +
		"• Technical skills and expertise<br>" +
		"• Education background<br>" +
		"• Contact information<br><br>" +
		`Try asking something like "What's her experience?" or "What technologies does she know?"`
}
