package handlers

import "github.com/gofiber/fiber/v2"

const indexPage = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Resume Parser</title>
	<style>
		body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
		.container { max-width: 1000px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
		.section { margin: 30px 0; padding: 25px; border: 2px solid #e1e1e1; border-radius: 8px; background: #fafafa; }
		input[type="file"], input[type="text"] { padding: 12px; margin: 8px; border: 2px solid #ddd; border-radius: 5px; width: 300px; }
		button { padding: 12px 20px; margin: 8px; background: #007ACC; color: white; border: none; border-radius: 5px; cursor: pointer; }
	</style>
</head>
<body>
<div class="container">
	<h1>Resume Parser</h1>
	<div class="section">
		<h2>Upload Resume</h2>
		<p>Upload a PDF or Word document to extract candidate information.</p>
		<form action="/upload" method="post" enctype="multipart/form-data">
			<input type="file" name="resume" accept=".pdf,.docx,.doc" required>
			<button type="submit">Parse Resume</button>
		</form>
	</div>
	<div class="section">
		<h2>Search Resumes</h2>
		<form action="/search" method="get">
			<input type="text" name="q" placeholder="Search by name or content">
			<button type="submit">Search All</button>
		</form>
		<form action="/search" method="get">
			<input type="text" name="skills" placeholder="Skills, e.g. python,javascript,react">
			<button type="submit">Search by Skills</button>
		</form>
	</div>
	<div class="section">
		<h2>Quick Actions</h2>
		<a href="/api/stats"><button type="button">View Database Stats</button></a>
		<a href="/search"><button type="button">View All Resumes</button></a>
		<a href="/swagger/index.html"><button type="button">API Docs</button></a>
	</div>
</div>
</body>
</html>
`

// Index serves the upload and search page.
func Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(indexPage)
}
