package main

// sampleEssay is graded when no input is given.
const sampleEssay = `The Impact of Generative AI at Programming Society

Generative AI has revolutionized the programming landscape, driving profound changes
in how software is developed, learned, and maintained. One of the most significant
impacts is enhanced productivity. Tools like GitHub Copilot and ChatGPT assist developers
by generating code snippets, debugging, and automating repetitive tasks, allowing more
focus on innovation and problem-solving.

This technology has also democratized programming, lowering barriers for non-technical
users. With AI-powered no-code and low-code platforms, individuals with minimal programming
knowledge can build applications, fostering inclusivity and innovation across industries.
Furthermore, generative AI is transforming education, providing personalized learning
experiences and instant feedback to accelerate skill acquisition for aspiring developers.

Generative AI accelerates innovation by enabling rapid prototyping and exploration of new
ideas. However, it also reshapes the roles of developers, shifting their focus from raw
coding to designing workflows, managing AI models, and addressing ethical considerations.
This evolution creates new opportunities but also necessitates continuous upskilling to
meet changing demands in the job market.

The rise of generative AI brings challenges, including security vulnerabilities, ethical
concerns, and questions about code ownership. Developers must adopt robust validation
practices and ethical frameworks to mitigate these risks. Moreover, its influence on
open-source communities raises questions about authorship and licensing of AI-generated
contributions.

In conclusion, generative AI is transforming programming society, offering unparalleled
opportunities while introducing complex challenges. Its responsible integration will
define the future of software development and the role of developers in a rapidly
evolving technological landscape.
`
