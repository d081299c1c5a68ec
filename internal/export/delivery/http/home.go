package http

// homePage is the export form. View rendering is deliberately this
// thin: one static page, no template engine.
const homePage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Todoist Export</title>
</head>
<body>
  <h1>Todoist Export</h1>
  <p>Download your full Todoist task dataset as JSON or CSV.</p>
  <form action="/auth/login" method="get">
    <label>
      Format:
      <select name="format">
        <option value="json">JSON</option>
        <option value="csv">CSV</option>
      </select>
    </label>
    <label>
      <input type="checkbox" name="archived" value="1">
      Include archived tasks (requires Todoist Premium)
    </label>
    <button type="submit">Authorize and export</button>
  </form>
</body>
</html>
`
