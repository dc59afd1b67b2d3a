package generation

import (
	"fmt"
	"strings"
)

const scriptSystemPrompt = `You are an instructional designer writing narrated lesson scripts for a classroom learning platform. Write clear, engaging prose a teacher could read aloud. Match the depth to the stated grade level.`

func buildScriptUserMessage(topic string, lengthMinutes, slideCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Target length: %d minutes of narration\n", lengthMinutes))
	b.WriteString(fmt.Sprintf("Slide count: %d\n", slideCount))

	b.WriteString(`
Instructions:
Write a lesson script on the topic above:
1. Split the narration into exactly the requested number of slides, numbered from 1.
2. Each slide's segment should be 2-4 sentences and stand alone when read over a single visual.
3. Open with a hook on slide 1 and close with a short recap on the last slide.
4. Keep the combined slide segments equal to the full script text.
5. Use plain text. No markdown, no stage directions.`)

	return b.String()
}

const imageSystemPrompt = `You generate one illustrative image per lesson slide. Produce a single image matching the slide narration. Favor clean, diagram-like visuals over photorealism.`

func buildImageUserMessage(slideScript string, slideNumber int, topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Slide %d narration:\n%s\n", slideNumber, slideScript))
	b.WriteString("\nGenerate one illustration for this slide.")

	return b.String()
}

const quizPromptSystemPrompt = `You are a curriculum writer preparing a detailed brief for a quiz author. The brief describes what a quiz on the given topic must cover; it is not the quiz itself.`

func buildQuizPromptUserMessage(topic, questionType string, numQuestions int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Question type: %s\n", questionType))
	b.WriteString(fmt.Sprintf("Number of questions: %d\n", numQuestions))

	b.WriteString(`
Instructions:
Write a brief for the quiz author covering:
1. The concepts the questions must span, ordered from recall to application.
2. Common misconceptions worth probing.
3. The difficulty spread across the question count.
Keep the brief under 300 words of plain text.`)

	return b.String()
}

const quizQuestionsSystemPrompt = `You are a quiz author. Follow the provided brief exactly and return well-formed questions with unambiguous answer keys.`

func buildQuizQuestionsUserMessage(prompt, topic, questionType string, numQuestions int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Question type: %s\n", questionType))
	b.WriteString(fmt.Sprintf("Number of questions: %d\n", numQuestions))
	b.WriteString("\nBrief:\n")
	b.WriteString(prompt)

	b.WriteString(fmt.Sprintf(`

Instructions:
Write exactly %d questions:
1. For MCQ, provide exactly 4 options and make correctAnswer match one of them verbatim.
2. For True/False, correctAnswer is "True" or "False" with no options.
3. For Short Answer, correctAnswer is a 1-5 word phrase with no options.
4. For Mixed, vary the type per question across the three forms above.
5. Every question gets a one-sentence explanation.`, numQuestions))

	return b.String()
}
